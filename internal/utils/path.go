package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver resolves input and config paths for the phonecode binary
type PathResolver struct {
	executableDir string
	workDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}

	// Resolve any symlinks to get the actual binary location
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	workDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
		workDir = "."
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workDir:       workDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, workDir=%s, configDir=%s",
		pr.executableDir, pr.workDir, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "phonecode")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "phonecode")
		}
		return filepath.Join(homeDir, ".config", "phonecode")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "phonecode")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "phonecode")
	default:
		return filepath.Join(homeDir, ".phonecode")
	}
}

// ResolveInput finds an input file.
// It tries multiple locations in order of preference:
// 1. The path itself (absolute, or relative to the working directory)
// 2. Relative to executable directory
// When nothing exists the path is returned unchanged so the caller reports it as given.
func (pr *PathResolver) ResolveInput(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	candidates := []string{
		filepath.Join(pr.workDir, path),
		filepath.Join(pr.executableDir, path),
	}
	for _, candidate := range candidates {
		if FileExists(candidate) {
			log.Debugf("Resolved input %s -> %s", path, candidate)
			return candidate
		}
		log.Debugf("Input candidate not found: %s", candidate)
	}
	return path
}

// ConfigPath returns the default location of a config file
func (pr *PathResolver) ConfigPath(filename string) string {
	return filepath.Join(pr.configDir, filename)
}
