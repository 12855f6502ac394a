package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTextFileDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if !IsTextFile("config.ini", content) {
		t.Fatalf("expected UTF-16 LE content to be treated as text")
	}
}

func TestIsTextFileRejectsNULBytes(t *testing.T) {
	if IsTextFile("blob", []byte{'a', 0x00, 'b'}) {
		t.Fatalf("expected NUL-containing content to be binary")
	}
}

func TestIsTextFileRejectsBinaryExtension(t *testing.T) {
	if IsTextFile("photo.PNG", []byte("plain")) {
		t.Fatalf("expected .png to be treated as binary")
	}
}

func TestDecodeTextUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if got, want := DecodeText(content), "A\r\n"; got != want {
		t.Fatalf("DecodeText returned %q, want %q", got, want)
	}
}

func TestEncodeTextRestoresDetectedEncoding(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    Encoding
	}{
		{"plain", []byte("hi\n"), EncodingUTF8},
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i', '\n'}, EncodingUTF8BOM},
		{"utf16 le", []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0}, EncodingUTF16LE},
		{"utf16 be", []byte{0xFE, 0xFF, 0, 'h', 0, 'i', 0, '\n'}, EncodingUTF16BE},
	}
	for _, tt := range tests {
		enc := DetectEncoding(tt.content)
		if enc != tt.want {
			t.Fatalf("%s: DetectEncoding = %v, want %v", tt.name, enc, tt.want)
		}
		out, err := EncodeText(DecodeText(tt.content), enc)
		if err != nil {
			t.Fatalf("%s: EncodeText: %v", tt.name, err)
		}
		if string(out) != string(tt.content) {
			t.Errorf("%s: round trip = %v, want %v", tt.name, out, tt.content)
		}
	}
}

func TestDecodeTextStripsUTF8BOM(t *testing.T) {
	if got := DecodeText([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'}); got != "hi" {
		t.Fatalf("DecodeText returned %q, want %q", got, "hi")
	}
}

func TestIsEditable(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	binary := filepath.Join(dir, "blob.dat")
	if err := os.WriteFile(binary, []byte{0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if !IsEditable(text) {
		t.Errorf("expected %s to be editable", text)
	}
	if IsEditable(binary) {
		t.Errorf("expected %s not to be editable", binary)
	}
	if IsEditable(dir) {
		t.Errorf("expected directory not to be editable")
	}
	if IsEditable(filepath.Join(dir, "missing.txt")) {
		t.Errorf("expected missing file not to be editable")
	}
}
