package models

import (
	"encoding/json"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// DownloadRecord is the wire shape of a download outcome. Exactly one of the
// success fields or Error is populated, depending on Status.
type DownloadRecord struct {
	Status   string `json:"status"`
	Title    string `json:"title,omitempty"`
	Filename string `json:"filename,omitempty"`
	Filepath string `json:"filepath,omitempty"`
	Error    string `json:"error,omitempty"`
}

// InfoRecord is the wire shape of a metadata query outcome. Duration and
// Thumbnail are pointers so their zero values still serialize on success.
type InfoRecord struct {
	Status    string  `json:"status"`
	Title     string  `json:"title,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
	Thumbnail *string `json:"thumbnail,omitempty"`
	Error     string  `json:"error,omitempty"`
}

func NewDownloadSuccess(d *Download) DownloadRecord {
	return DownloadRecord{
		Status:   StatusSuccess,
		Title:    d.Title,
		Filename: d.Filename,
		Filepath: d.Filepath,
	}
}

func NewDownloadError(msg string) DownloadRecord {
	return DownloadRecord{
		Status: StatusError,
		Error:  msg,
	}
}

func NewInfoSuccess(i *Info) InfoRecord {
	return InfoRecord{
		Status:    StatusSuccess,
		Title:     i.Title,
		Duration:  &i.Duration,
		Thumbnail: &i.Thumbnail,
	}
}

func NewInfoError(msg string) InfoRecord {
	return InfoRecord{
		Status: StatusError,
		Error:  msg,
	}
}

// MarshalRecord serializes a record to its wire form. Records are plain
// structs, so encoding cannot realistically fail; the fallback keeps the
// operation contract of always answering with a record.
func MarshalRecord(rec interface{}) string {
	b, err := json.Marshal(rec)
	if err != nil {
		return `{"status":"error","error":"failed to encode result"}`
	}
	return string(b)
}
