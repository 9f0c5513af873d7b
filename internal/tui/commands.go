package tui

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/assistant"
	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/document"
)

func uploadJob(client assistant.Client, file document.File) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		outcome, err := client.Upload(ctx, file)
		if err != nil {
			return uploadResultMsg{fileID: file.ID, err: err}, err
		}
		return uploadResultMsg{fileID: file.ID, outcome: outcome}, nil
	}
}

func answerJob(client assistant.Client, question string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		report, err := client.Answer(ctx, question)
		if err != nil {
			return answerResultMsg{question: question, err: err}, err
		}
		return answerResultMsg{question: question, report: report}, nil
	}
}

func readDirJob(dir string) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		listing, err := os.ReadDir(dir)
		if err != nil {
			return browseLoadedMsg{dir: dir, err: err}, err
		}
		entries := make([]browseEntry, 0, len(listing))
		for _, item := range listing {
			name := item.Name()
			if strings.HasPrefix(name, ".") {
				continue
			}
			entry := browseEntry{
				Name: name,
				Path: filepath.Join(dir, name),
				Dir:  item.IsDir(),
			}
			if !entry.Dir {
				if info, err := item.Info(); err == nil {
					entry.Size = info.Size()
				}
			}
			entries = append(entries, entry)
		}
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].Dir != entries[j].Dir {
				return entries[i].Dir
			}
			return entries[i].Name < entries[j].Name
		})
		return browseLoadedMsg{dir: dir, entries: entries}, nil
	}
}
