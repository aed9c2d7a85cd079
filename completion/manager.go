package completion

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/napalu/kommando/errs"
)

const (
	dirPerm    os.FileMode = 0o755
	scriptPerm os.FileMode = 0o644
)

// CompletionManager generates the completion script of a program for one shell and installs
// it into the user completion directory of that shell
type CompletionManager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	script      string
	dir         string
}

// NewCompletionManager creates a manager for shell. programName may be a path; only its base
// name is used.
func NewCompletionManager(shell, programName string) (*CompletionManager, error) {
	paths, err := getCompletionPaths(runtime.GOOS, shell)
	if err != nil {
		return nil, err
	}

	return &CompletionManager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   GetGenerator(shell),
		dir:         paths.Primary,
	}, nil
}

// Accept generates the script for data
func (cm *CompletionManager) Accept(data CompletionData) {
	cm.script = cm.generator.Generate(cm.ProgramName, data)
}

// Script returns the script generated by Accept
func (cm *CompletionManager) Script() string {
	return cm.script
}

// FilePath returns the file SaveCompletion writes to. After a successful SaveCompletion it
// reflects the directory actually used.
func (cm *CompletionManager) FilePath() string {
	return filepath.Join(cm.dir, cm.Paths.Prefix+cm.ProgramName+cm.Paths.Ext)
}

// SaveCompletion writes the generated script, falling back to Paths.Fallback when the
// primary directory cannot be prepared
func (cm *CompletionManager) SaveCompletion() error {
	if cm.script == "" {
		return errs.ErrNoCompletionScript
	}
	if err := cm.prepareDir(); err != nil {
		return err
	}

	path := cm.FilePath()
	if err := os.WriteFile(path, []byte(cm.script), scriptPerm); err != nil {
		return errs.ErrCompletionInstall.WithArgs(path).Wrap(err)
	}

	return ensurePermission(path, scriptPerm)
}

func (cm *CompletionManager) prepareDir() error {
	err := ensureDir(cm.Paths.Primary, dirPerm)
	if err == nil {
		cm.dir = cm.Paths.Primary
		return nil
	}
	if cm.Paths.Fallback == "" {
		return errs.ErrCompletionInstall.WithArgs(cm.Paths.Primary).Wrap(err)
	}

	if err := ensureDir(cm.Paths.Fallback, dirPerm); err != nil {
		return errs.ErrCompletionInstall.WithArgs(cm.Paths.Fallback).Wrap(err)
	}
	cm.dir = cm.Paths.Fallback

	return nil
}
