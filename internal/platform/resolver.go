package platform

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// External tool names, without platform suffix
const (
	ExtractionTool = "yt-dlp"
	ConversionTool = "ffmpeg"
)

// Directory names relative to an installation root
const (
	ToolsDirName     = "Tools"
	DownloadsDirName = "Downloads"
	WindowsExeSuffix = ".exe"
)

// MissingToolError reports a required binary that could not be found
type MissingToolError struct {
	Name string
	Path string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("required tool not found: %s (expected location: %s)", e.Name, e.Path)
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithBaseDir sets the installation directory checked first for Tools/
func WithBaseDir(dir string) ResolverOption {
	return func(r *Resolver) {
		if dir = strings.TrimSpace(dir); dir != "" {
			r.baseDir = dir
		}
	}
}

// WithRootDir sets the secondary root used for the Tools/ fallback and the default output directory
func WithRootDir(dir string) ResolverOption {
	return func(r *Resolver) {
		if dir = strings.TrimSpace(dir); dir != "" {
			r.rootDir = dir
		}
	}
}

// WithToolsDir sets an explicit tools directory that takes precedence over both roots
func WithToolsDir(dir string) ResolverOption {
	return func(r *Resolver) {
		r.toolsDir = strings.TrimSpace(dir)
	}
}

// WithSearchPath lets tool resolution fall back to PATH before the secondary root
func WithSearchPath(enabled bool) ResolverOption {
	return func(r *Resolver) {
		r.searchPath = enabled
	}
}

// WithDefaultOutputDir overrides the default output directory
func WithDefaultOutputDir(dir string) ResolverOption {
	return func(r *Resolver) {
		r.defaultOutputDir = strings.TrimSpace(dir)
	}
}

// Resolver locates the external tools and owns the output directory setting
type Resolver struct {
	baseDir          string
	rootDir          string
	toolsDir         string
	searchPath       bool
	defaultOutputDir string

	mu              sync.RWMutex
	customOutputDir string
}

// NewResolver creates a resolver rooted at the running executable's directory
// with the working directory as the secondary root
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		baseDir: executableDir(),
		rootDir: workingDir(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.defaultOutputDir == "" {
		r.defaultOutputDir = filepath.Join(r.rootDir, DownloadsDirName)
	}
	return r
}

// ToolPath resolves the path for a tool. Candidates are checked in order:
// explicit tools directory, installation Tools/, PATH (when enabled). The
// secondary root's Tools/ is returned unverified when nothing else exists.
func (r *Resolver) ToolPath(name string) string {
	binary := ExecutableName(name)

	if r.toolsDir != "" {
		candidate := filepath.Join(r.toolsDir, binary)
		if FileExists(candidate) {
			return candidate
		}
	}

	local := filepath.Join(r.baseDir, ToolsDirName, binary)
	if FileExists(local) {
		return local
	}

	fallback := filepath.Join(r.rootDir, ToolsDirName, binary)
	if r.searchPath && !FileExists(fallback) {
		if found, err := exec.LookPath(binary); err == nil {
			return found
		}
	}
	return fallback
}

// ExtractionToolPath returns the resolved yt-dlp path
func (r *Resolver) ExtractionToolPath() string {
	return r.ToolPath(ExtractionTool)
}

// ConversionToolPath returns the resolved ffmpeg path
func (r *Resolver) ConversionToolPath() string {
	return r.ToolPath(ConversionTool)
}

// ValidateTools checks the extraction tool and then the conversion tool,
// returning the first one missing
func (r *Resolver) ValidateTools() (bool, string) {
	for _, name := range []string{ExtractionTool, ConversionTool} {
		if !FileExists(r.ToolPath(name)) {
			return false, ExecutableName(name)
		}
	}
	return true, ""
}

// CheckTools is ValidateTools as an error, carrying the expected location
func (r *Resolver) CheckTools() error {
	ok, missing := r.ValidateTools()
	if ok {
		return nil
	}
	name := strings.TrimSuffix(missing, WindowsExeSuffix)
	return &MissingToolError{Name: missing, Path: r.ToolPath(name)}
}

// OutputDirectory returns the custom output directory, or the default one
func (r *Resolver) OutputDirectory() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.customOutputDir != "" {
		return r.customOutputDir
	}
	return r.defaultOutputDir
}

// DefaultOutputDirectory returns the output directory used when no override is set
func (r *Resolver) DefaultOutputDirectory() string {
	return r.defaultOutputDir
}

// HasCustomOutputDirectory returns true if an override is active
func (r *Resolver) HasCustomOutputDirectory() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.customOutputDir != ""
}

// SetOutputDirectory overrides the output directory. An empty path resets to
// the default. The directory must already exist.
func (r *Resolver) SetOutputDirectory(path string) error {
	path = strings.TrimSpace(path)
	if path != "" && !DirectoryExists(path) {
		return fmt.Errorf("the specified path does not exist: %s: %w", path, fs.ErrNotExist)
	}

	r.mu.Lock()
	r.customOutputDir = path
	r.mu.Unlock()
	return nil
}

// EnsureOutputDirectory creates the current output directory if it is absent
func (r *Resolver) EnsureOutputDirectory() error {
	dir := r.OutputDirectory()
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}
	return nil
}

// WithOutputDirectory runs fn with the output directory temporarily set to dir.
// The previous setting is restored on every exit path, including panics.
func (r *Resolver) WithOutputDirectory(dir string, fn func()) error {
	r.mu.RLock()
	previous := r.customOutputDir
	r.mu.RUnlock()

	if err := r.SetOutputDirectory(dir); err != nil {
		return err
	}
	defer func() {
		r.mu.Lock()
		r.customOutputDir = previous
		r.mu.Unlock()
	}()

	fn()
	return nil
}

// ExecutableName adds the platform executable suffix to a tool name
func ExecutableName(name string) string {
	if runtime.GOOS == OSWindows {
		return name + WindowsExeSuffix
	}
	return name
}

// executableDir returns the directory of the running binary, or "." if unknown
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// workingDir returns the current working directory, or "." if unknown
func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
