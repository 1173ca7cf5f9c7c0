package fileutil

import (
	"errors"
	"os"
	"testing"
)

func TestHasMarkdownExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{path: "readme.md", want: true},
		{path: "README.MD", want: true},
		{path: "notes.Md", want: true},
		{path: "guide.markdown", want: true},
		{path: "guide.MARKDOWN", want: true},
		{path: "dir/sub/file.md", want: true},
		{path: ".md", want: true},
		{path: "readme.txt", want: false},
		{path: "readme.mdx", want: false},
		{path: "readme", want: false},
		{path: "readme.md.bak", want: false},
		{path: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := HasMarkdownExt(tt.path); got != tt.want {
				t.Errorf("HasMarkdownExt(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	content := "<html><body>hello</body></html>"

	path, cleanup, err := WriteTempFile(content, "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error: %v", err)
	}
	defer cleanup()

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(got) != content {
		t.Errorf("temp file content = %q, want %q", got, content)
	}

	cleanup()
	if FileExists(path) {
		t.Error("cleanup did not remove the temp file")
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     string
		wantErr error
	}{
		{name: "valid", ext: "html"},
		{name: "empty", ext: "", wantErr: ErrExtensionEmpty},
		{name: "slash", ext: "a/b", wantErr: ErrExtensionPathTraversal},
		{name: "backslash", ext: `a\b`, wantErr: ErrExtensionPathTraversal},
		{name: "null byte", ext: "a\x00b", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExtension(tt.ext)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateExtension(%q) error = %v, want %v", tt.ext, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateExtension(%q) unexpected error: %v", tt.ext, err)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	if IsFilePath("name") {
		t.Error("IsFilePath(name) = true")
	}
	if !IsFilePath("dir/name") {
		t.Error("IsFilePath(dir/name) = false")
	}
	if !IsFilePath(`dir\name`) {
		t.Error(`IsFilePath(dir\name) = false`)
	}
}
