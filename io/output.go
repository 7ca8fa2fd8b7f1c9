package io

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateOutputFolder creates the folder the figures are written to:
// check_RecovCls-<config basename>, next to the configuration file. If it
// cannot be created there (e.g. a read-only directory), the same-named
// folder is created in the current working directory instead. An existing
// folder is reused.
func CreateOutputFolder(configPath string) (string, error) {
	base := filepath.Base(configPath)
	root := strings.TrimSuffix(base, filepath.Ext(base))
	name := "check_RecovCls-" + root

	folder := filepath.Join(filepath.Dir(configPath), name)
	if isDir(folder) {
		fmt.Println("Folder", folder, "exists.")
		return folder, nil
	}

	fmt.Println("Creating folder", folder, "for the outputs.")
	if err := os.Mkdir(folder, 0755); err == nil {
		return folder, nil
	}

	fmt.Println("Cannot create folder at", filepath.Dir(configPath),
		"! Will create folder in current directory!")
	folder = name
	if isDir(folder) {
		fmt.Println("Folder", folder, "exists.")
		return folder, nil
	}
	if err := os.Mkdir(folder, 0755); err != nil {
		return "", err
	}
	return folder, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
