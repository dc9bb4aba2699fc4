package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/themadprofessor/ruff/ff"
	"golang.org/x/image/bmp"
)

const numWorkers = 4

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return img, nil
}

func encodeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".ff", ".farbfeld":
		err = ff.Encode(f, img)
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = fmt.Errorf("%s: unsupported output format", path)
	}
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func convertFile(src, dst string) error {
	img, err := decodeImage(src)
	if err != nil {
		return err
	}
	return encodeImage(dst, img)
}

func quantizeImage(img image.Image, colors int) image.Image {
	q := quantize.MedianCutQuantizer{}

	b := img.Bounds()
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), img))
	draw.Draw(pm, b, img, b.Min, draw.Src)

	return pm
}

func findFiles(ctx context.Context, paths []string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		for _, path := range paths {
			if _, err := os.Stat(path); err != nil {
				errc <- err
				return
			}

			select {
			case out <- path:
			case <-ctx.Done():
				errc <- errors.New("conversion cancelled")
				return
			}
		}
	}()
	return out, errc
}

func conversionWorker(logger *log.Logger, in <-chan string, dir, format string) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for src := range in {
			base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
			dst := filepath.Join(dir, base+"."+format)

			if err := convertFile(src, dst); err != nil {
				errc <- err
				return
			}

			logger.Printf("converted \"%s\" to \"%s\"\n", src, dst)
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func batchConvert(logger *log.Logger, paths []string, dir, format string) error {
	switch format {
	case "ff", "png", "bmp":
	default:
		return fmt.Errorf("unsupported output format \"%s\"", format)
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc := findFiles(ctx, paths)
	errcList = append(errcList, errc)

	for i := 0; i < numWorkers; i++ {
		errcList = append(errcList, conversionWorker(logger, files, dir, format))
	}

	return waitForPipeline(errcList...)
}
