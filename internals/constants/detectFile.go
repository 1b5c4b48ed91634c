package constants

import (
	"path/filepath"
	"strings"
)

// Kode tipe file untuk lampiran
const (
	FileTypeAudio   = 2
	FileTypeDocx    = 3
	FileTypePDF     = 4
	FileTypePPT     = 5
	FileTypeImage   = 6
	FileTypeUnknown = 99
)

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return FileTypeAudio
	case ".doc", ".docx":
		return FileTypeDocx
	case ".pdf":
		return FileTypePDF
	case ".ppt", ".pptx":
		return FileTypePPT
	case ".png", ".jpg", ".jpeg", ".webp":
		return FileTypeImage
	default:
		return FileTypeUnknown
	}
}

// IsCertificateFile: sertifikat hanya menerima PDF atau gambar hasil scan
func IsCertificateFile(filename string) bool {
	t := DetectFileTypeFromExt(filename)
	return t == FileTypePDF || t == FileTypeImage
}
