package repository

import "github.com/spf13/afero"

// FileSystemRepository is the filesystem config is loaded from. Tests swap
// in afero.NewMemMapFs.

type FileSystemRepository interface {
	afero.Fs
}
