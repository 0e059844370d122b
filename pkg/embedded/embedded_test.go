package embedded

import (
	"testing"
	"testing/fstest"
)

// newTestFS 构造与 assets/ 和 data/ 布局一致的内存文件系统
func newTestFS() (fstest.MapFS, fstest.MapFS) {
	assets := fstest.MapFS{
		"assets/config/resources.yaml":     {Data: []byte("version: \"1.0\"\n")},
		"assets/images/balloon_100001.png": {Data: []byte("png")},
		"assets/images/balloon_100002.png": {Data: []byte("png")},
		"assets/images/alphabet_10001.png": {Data: []byte("png")},
		"assets/sounds/pop.wav":            {Data: []byte("RIFF")},
	}
	data := fstest.MapFS{
		"data/balloon.yaml": {Data: []byte("releaseThreshold: 3\n")},
	}
	return assets, data
}

// withTestFS 初始化测试文件系统，测试结束后恢复未初始化状态
func withTestFS(t *testing.T) {
	t.Helper()
	assets, data := newTestFS()
	Init(assets, data)
	t.Cleanup(func() {
		assetsFS, dataFS = nil, nil
		initialized = false
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	withTestFS(t)
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestNotInitialized 未初始化时所有访问都返回同一个错误
func TestNotInitialized(t *testing.T) {
	initialized = false

	calls := map[string]func() error{
		"Open":     func() error { _, err := Open("assets/x.png"); return err },
		"ReadFile": func() error { _, err := ReadFile("assets/x.png"); return err },
		"Glob":     func() error { _, err := Glob("assets/*.png"); return err },
		"ReadDir":  func() error { _, err := ReadDir("assets/images"); return err },
		"Stat":     func() error { _, err := Stat("assets/x.png"); return err },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			if err == nil {
				t.Fatalf("Expected error when calling %s() before Init()", name)
			}
			if err.Error() != "embedded package not initialized, call Init() first" {
				t.Errorf("Unexpected error message: %v", err)
			}
		})
	}

	if Exists("assets/x.png") {
		t.Error("Expected Exists() to return false before Init()")
	}
}

// TestInvalidPrefix 路径必须以 assets/ 或 data/ 开头
func TestInvalidPrefix(t *testing.T) {
	withTestFS(t)

	tests := []struct {
		name string
		call func() error
		want string
	}{
		{"Open", func() error { _, err := Open("invalid/path/test.png"); return err },
			"unknown resource path prefix: invalid/path/test.png (must start with 'assets/' or 'data/')"},
		{"ReadFile", func() error { _, err := ReadFile("invalid/path/test.txt"); return err },
			"unknown resource path prefix: invalid/path/test.txt (must start with 'assets/' or 'data/')"},
		{"Glob", func() error { _, err := Glob("invalid/*.txt"); return err },
			"unknown resource path prefix: invalid/*.txt (must start with 'assets/' or 'data/')"},
		{"ReadDir", func() error { _, err := ReadDir("invalid"); return err },
			"unknown resource path prefix: invalid (must start with 'assets/' or 'data/')"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if err == nil {
				t.Fatal("Expected error for invalid path prefix")
			}
			if err.Error() != tt.want {
				t.Errorf("Unexpected error message: %v", err)
			}
		})
	}
}

// TestReadFileRoutesByPrefix assets/ 和 data/ 分别从各自的文件系统读取
func TestReadFileRoutesByPrefix(t *testing.T) {
	withTestFS(t)

	data, err := ReadFile("data/balloon.yaml")
	if err != nil {
		t.Fatalf("ReadFile(data/balloon.yaml) failed: %v", err)
	}
	if string(data) != "releaseThreshold: 3\n" {
		t.Errorf("unexpected content: %q", data)
	}

	if _, err := ReadFile("assets/sounds/pop.wav"); err != nil {
		t.Errorf("ReadFile(assets/sounds/pop.wav) failed: %v", err)
	}
	if _, err := ReadFile("assets/balloon.yaml"); err == nil {
		t.Error("data file should not be visible under assets/")
	}
}

// TestPathNormalization "./" 前缀和反斜杠被标准化
func TestPathNormalization(t *testing.T) {
	withTestFS(t)

	if !Exists("./assets/sounds/pop.wav") {
		t.Error("Path normalization should remove './' prefix")
	}
	if Exists("assets/sounds/missing.wav") {
		t.Error("Expected Exists() to return false for missing file")
	}
}

func TestGlobAndReadDir(t *testing.T) {
	withTestFS(t)

	matches, err := Glob("assets/images/balloon_*.png")
	if err != nil {
		t.Fatalf("Glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 balloon images, got %d: %v", len(matches), matches)
	}

	entries, err := ReadDir("assets/images")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("expected 3 entries in assets/images, got %d", len(entries))
	}
}

func TestStat(t *testing.T) {
	withTestFS(t)

	info, err := Stat("data/balloon.yaml")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != int64(len("releaseThreshold: 3\n")) {
		t.Errorf("unexpected size %d", info.Size())
	}
	if info.IsDir() {
		t.Error("expected a file, got a directory")
	}
}
