package embedded

import (
	"testing"
	"testing/fstest"
)

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/slider_demo.yaml": &fstest.MapFile{Data: []byte("handle: handle\n")},
	})

	if !IsInitialized() {
		t.Fatal("IsInitialized() should be true after Init")
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"正常路径", "data/slider_demo.yaml", false},
		{"带 ./ 前缀", "./data/slider_demo.yaml", false},
		{"未知前缀", "assets/slider_demo.yaml", true},
		{"文件不存在", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && string(data) != "handle: handle\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%q) = %v", tt.path, !tt.wantErr)
			}
		})
	}
}
