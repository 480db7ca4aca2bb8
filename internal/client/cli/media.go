package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/bosphorusfellas/clubclient/internal/client/models"
	"github.com/bosphorusfellas/clubclient/internal/client/services"
	"github.com/bosphorusfellas/clubclient/internal/netx"
)

func (a *App) cmdUpload(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: upload <file> [file...]")
		return
	}

	var reqs []services.UploadRequest
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(a.out, "Skipping %s: %v\n", path, err)
			continue
		}
		reqs = append(reqs, services.UploadRequest{
			Filename: filepath.Base(path),
			Data:     data,
			MimeType: mime.TypeByExtension(filepath.Ext(path)),
			IsPublic: true,
		})
	}
	if len(reqs) == 0 {
		return
	}

	if len(reqs) == 1 {
		res := a.media.Upload(ctx, reqs[0])
		if !res.OK {
			fmt.Fprintln(a.out, "Upload failed:", res.ErrorMessage)
			return
		}
		fmt.Fprintf(a.out, "Uploaded %s (%s)\n", res.Data.OriginalFilename, res.Data.FileURL)
		return
	}

	bulk, outcomes := a.media.UploadMany(ctx, reqs)
	for _, o := range outcomes {
		if o.Result.OK {
			fmt.Fprintf(a.out, "ok      %s\n", o.Filename)
		} else {
			fmt.Fprintf(a.out, "failed  %s: %s\n", o.Filename, o.Result.ErrorMessage)
		}
	}
	fmt.Fprintln(a.out, "Upload:", bulk.String())
}

func (a *App) cmdMedia(ctx context.Context) {
	res := a.media.List(ctx, models.MediaFilter{})
	if !res.OK {
		fmt.Fprintln(a.out, "Could not load media:", res.ErrorMessage)
		return
	}
	for _, m := range res.Data {
		fmt.Fprintf(a.out, "%s  %-8s %-10s %s\n", m.ID, m.MediaType, services.FormatFileSize(m.FileSize), m.OriginalFilename)
	}

	usage := a.media.Usage(ctx)
	if usage.OK {
		fmt.Fprintf(a.out, "%d file(s), %s total\n", usage.Data.FileCount, services.FormatFileSize(usage.Data.TotalSize))
	}
}

func (a *App) cmdDownload(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: download <media-id> [target-path]")
		return
	}

	res := a.media.Get(ctx, args[0])
	if !res.OK {
		fmt.Fprintln(a.out, "Could not look up media:", res.ErrorMessage)
		return
	}

	target := res.Data.OriginalFilename
	if len(args) > 1 {
		target = args[1]
	}

	data, err := netx.DownloadPublicURL(ctx, res.Data.FileURL)
	if err != nil {
		fmt.Fprintln(a.out, "Download failed:", err)
		return
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		fmt.Fprintln(a.out, "Could not write file:", err)
		return
	}
	fmt.Fprintf(a.out, "Saved %s (%s)\n", target, services.FormatFileSize(int64(len(data))))
}
