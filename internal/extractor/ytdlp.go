package extractor

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fastjson"
)

const DefaultBinary = "yt-dlp"

var ErrNoMetadata = errors.New("extractor returned no metadata")

// YtDlp drives the yt-dlp binary.
type YtDlp struct {
	binary string
}

func NewYtDlp(binary string) *YtDlp {
	if binary == "" {
		binary = DefaultBinary
	}

	return &YtDlp{
		binary: binary,
	}
}

func (y *YtDlp) Extract(ctx context.Context, url string, download bool, opts Options) (*Metadata, error) {
	cmd := exec.CommandContext(ctx, y.binary, buildArgs(download, opts)...)

	// provide URL via stdin for security, yt-dlp has some run command args
	cmd.Stdin = bytes.NewBufferString(url + "\n")

	stdoutBuf := &bytes.Buffer{}
	stderrBuf := &bytes.Buffer{}
	cmd.Stdout = stdoutBuf
	cmd.Stderr = stderrBuf

	runErr := cmd.Run()

	// the ERROR: line carries the useful diagnostic, prefer it over the
	// process exit status
	if err := scanStderr(stderrBuf); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, errors.Wrap(runErr, "extractor exited")
	}
	if stdoutBuf.Len() == 0 {
		return nil, ErrNoMetadata
	}

	return parseMetadata(stdoutBuf.Bytes())
}

func buildArgs(download bool, opts Options) []string {
	args := []string{
		"--no-warnings",
		"--no-color",
		"--quiet",
		"--batch-file", "-",
	}

	if opts.NoPlaylist {
		args = append(args, "--no-playlist")
	}
	if opts.GeoBypass {
		args = append(args, "--geo-bypass")
	}
	if opts.SocketTimeout > 0 {
		args = append(args, "--socket-timeout", strconv.Itoa(int(opts.SocketTimeout/time.Second)))
	}
	if opts.Retries > 0 {
		args = append(args, "--retries", strconv.Itoa(opts.Retries))
	}
	if opts.UserAgent != "" {
		args = append(args, "--user-agent", opts.UserAgent)
	}
	if opts.Format != "" {
		args = append(args, "-f", opts.Format)
	}
	if len(opts.FormatSort) > 0 {
		args = append(args, "--format-sort", strings.Join(opts.FormatSort, ","))
	}

	if download {
		if opts.OutputTemplate != "" {
			args = append(args, "-o", opts.OutputTemplate)
		}
		// print the metadata object after the download completes, so the
		// reported filepath refers to the file actually written
		args = append(args, "--print-json")
	} else {
		args = append(args, "-J")
	}

	return args
}

// scanStderr surfaces the first ERROR: line yt-dlp printed. Its text becomes
// the failure message callers see.
func scanStderr(buf *bytes.Buffer) error {
	const errorPrefix = "ERROR: "

	stderrLineScanner := bufio.NewScanner(buf)
	for stderrLineScanner.Scan() {
		line := stderrLineScanner.Text()
		if strings.HasPrefix(line, errorPrefix) {
			return errors.New(line[len(errorPrefix):])
		}
	}

	return nil
}

func parseMetadata(out []byte) (*Metadata, error) {
	v, err := new(fastjson.Parser).ParseBytes(out)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode extractor metadata")
	}

	m := &Metadata{
		Title:     getString(v, "title"),
		Duration:  int(v.GetFloat64("duration")),
		Thumbnail: getString(v, "thumbnail"),
		Filename:  getString(v, "_filename"),
	}

	// newer yt-dlp reports the written path per requested download
	if dls := v.GetArray("requested_downloads"); len(dls) > 0 {
		m.Filepath = getString(dls[0], "filepath")
	}
	if m.Filepath == "" {
		m.Filepath = getString(v, "filepath")
	}

	return m, nil
}

func getString(v *fastjson.Value, key string) string {
	return string(v.GetStringBytes(key))
}
