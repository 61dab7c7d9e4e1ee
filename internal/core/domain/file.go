package domain

import (
	"path"
	"strings"
	"time"
)

// FileKind is a coarse classification used by the file manager listing.
type FileKind string

const (
	FileKindImage    FileKind = "image"
	FileKindPDF      FileKind = "pdf"
	FileKindDocument FileKind = "document"
	FileKindVideo    FileKind = "video"
	FileKindAudio    FileKind = "audio"
	FileKindArchive  FileKind = "archive"
	FileKindOther    FileKind = "file"
)

var kindByExt = map[string]FileKind{
	".jpg": FileKindImage, ".jpeg": FileKindImage, ".png": FileKindImage,
	".gif": FileKindImage, ".webp": FileKindImage,
	".pdf": FileKindPDF,
	".doc": FileKindDocument, ".docx": FileKindDocument, ".txt": FileKindDocument,
	".mp4": FileKindVideo, ".avi": FileKindVideo, ".mov": FileKindVideo,
	".mp3": FileKindAudio, ".wav": FileKindAudio, ".m4a": FileKindAudio,
	".zip": FileKindArchive, ".rar": FileKindArchive, ".7z": FileKindArchive,
}

// KindOfFile classifies a file name by its extension.
func KindOfFile(name string) FileKind {
	if k, ok := kindByExt[strings.ToLower(path.Ext(name))]; ok {
		return k
	}
	return FileKindOther
}

// StoredFile describes one entry in the upload store.
type StoredFile struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Kind       FileKind  `json:"kind"`
	ModifiedAt time.Time `json:"modified_at"`
}

// SizeKB renders the size in kibibytes, matching the listing pages.
func (f StoredFile) SizeKB() float64 {
	return float64(f.Size) / 1024
}
