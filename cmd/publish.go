package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/config"
)

// publishGit commits the written report files, and the deletion of reports
// that no longer exist, to the repository at cfg.Dir and optionally pushes.
// It returns false when nothing changed.
func publishGit(cfg config.GitPublish, written, removed []string) (bool, error) {
	if len(written) == 0 && len(removed) == 0 {
		return false, nil
	}

	gitPath, err := findExecutable("git")
	if err != nil {
		return false, fmt.Errorf("git not found in PATH")
	}

	repo, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return false, err
	}

	added, err := repoPaths(repo, written)
	if err != nil {
		return false, err
	}
	deleted, err := repoPaths(repo, removed)
	if err != nil {
		return false, err
	}

	if len(added) > 0 {
		if err := runGit(gitPath, repo, append([]string{"add", "--"}, added...)...); err != nil {
			return false, err
		}
	}
	if len(deleted) > 0 {
		if err := runGit(gitPath, repo, append([]string{"rm", "--cached", "--ignore-unmatch", "-q", "--"}, deleted...)...); err != nil {
			return false, err
		}
	}
	paths := append(added, deleted...)

	// diff --quiet exits 1 when the index differs from HEAD
	err = runGit(gitPath, repo, append([]string{"diff", "--cached", "--quiet", "--"}, paths...)...)
	if err == nil {
		slog.Debug("no report changes to commit", "repo", repo)
		return false, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		return false, err
	}

	message := cfg.Message
	if message == "" {
		message = "Update node inventory"
	}
	if err := runGit(gitPath, repo, "commit", "-m", message); err != nil {
		return false, err
	}

	if cfg.Push {
		if err := runGit(gitPath, repo, "push"); err != nil {
			return true, err
		}
	}
	return true, nil
}

// repoPaths converts file paths to paths relative to the repository root.
func repoPaths(repo string, files []string) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, err
		}
		rel, err := filepath.Rel(repo, abs)
		if err != nil {
			return nil, fmt.Errorf("%s is outside %s: %w", f, repo, err)
		}
		paths = append(paths, rel)
	}
	return paths, nil
}

func runGit(gitPath, repo string, args ...string) error {
	cmd := execCommand(gitPath, append([]string{"-C", repo}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	slog.Debug("running git", "args", args)
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("git %s: %w: %s", args[0], err, bytes.TrimSpace(stderr.Bytes()))
		}
		return fmt.Errorf("git %s: %w", args[0], err)
	}
	return nil
}
