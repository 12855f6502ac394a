package fs

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	textSampleSize        = 4096
	nonPrintablePercent   = 30
	maxEditableFileLength = 8 << 20
)

var binaryExtensions = map[string]struct{}{
	".7z": {}, ".bin": {}, ".bmp": {}, ".bz2": {}, ".class": {}, ".dll": {},
	".docx": {}, ".dylib": {}, ".exe": {}, ".gif": {}, ".gz": {}, ".ico": {},
	".iso": {}, ".jar": {}, ".jpeg": {}, ".jpg": {}, ".mp3": {}, ".mp4": {},
	".o": {}, ".pdf": {}, ".png": {}, ".so": {}, ".tar": {}, ".tgz": {},
	".wasm": {}, ".xlsx": {}, ".xz": {}, ".zip": {},
}

// IsTextFile determines if content looks like text. The path short-circuits
// well known binary extensions before sniffing.
func IsTextFile(path string, content []byte) bool {
	if _, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]; ok && path != "" {
		return false
	}
	if len(content) == 0 {
		return true
	}

	sample := content
	if len(sample) > textSampleSize {
		sample = sample[:textSampleSize]
	}
	if hasUnicodeBOM(sample) {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if b < 0x20 && b != '\t' && b != '\n' && b != '\r' && b != 0x1b || b == 0x7f {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) < nonPrintablePercent
}

// IsEditable reports whether path is a regular, reasonably sized text file.
func IsEditable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() || info.Size() > maxEditableFileLength {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer func() {
		_ = f.Close()
	}()
	sample, err := io.ReadAll(io.LimitReader(f, textSampleSize))
	if err != nil {
		return false
	}
	return IsTextFile(path, sample)
}

// Encoding is the on-disk form of a text file, identified by its BOM.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectEncoding reads the byte order mark, if any.
func DetectEncoding(content []byte) Encoding {
	switch {
	case bytes.HasPrefix(content, utf8BOM):
		return EncodingUTF8BOM
	case len(content) >= 2 && content[0] == 0xFF && content[1] == 0xFE:
		return EncodingUTF16LE
	case len(content) >= 2 && content[0] == 0xFE && content[1] == 0xFF:
		return EncodingUTF16BE
	default:
		return EncodingUTF8
	}
}

// DecodeText converts BOM-prefixed UTF-8/UTF-16 content to a plain UTF-8 string.
func DecodeText(content []byte) string {
	switch DetectEncoding(content) {
	case EncodingUTF8BOM:
		return string(content[len(utf8BOM):])
	case EncodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case EncodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

// EncodeText converts text back to enc, writing the BOM enc implies.
func EncodeText(text string, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingUTF8BOM:
		return append(append([]byte(nil), utf8BOM...), text...), nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(text))
	default:
		return []byte(text), nil
	}
}

func hasUnicodeBOM(sample []byte) bool {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return true
	}
	return len(sample) >= 2 && (sample[0] == 0xFF && sample[1] == 0xFE || sample[0] == 0xFE && sample[1] == 0xFF)
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
