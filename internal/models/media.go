package models

// DownloadRequest describes a single download call. Nothing in it survives
// the call; the downloaded file is the only durable artifact.
type DownloadRequest struct {
	URL       string
	OutputDir string
	Mode      Mode
}

// Download is the successful outcome of a media download.
type Download struct {
	Title    string
	Filename string
	Filepath string
}

// Info is descriptive metadata fetched without downloading anything.
type Info struct {
	Title     string
	Duration  int
	Thumbnail string
}
