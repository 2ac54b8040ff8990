package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"manrelbdg_backend/internals/configs"
)

/* =======================================================================
   Konfigurasi WebP
======================================================================= */

type WebPOptions struct {
	MaxW     int     // batas lebar (resize keep-aspect)
	MaxH     int     // batas tinggi
	Quality  float32 // 1..100
	Lossless bool
}

func WebPOptionsFromConfig(c configs.WebPConfig) WebPOptions {
	o := WebPOptions{MaxW: c.MaxW, MaxH: c.MaxH, Quality: c.Quality}
	if o.Quality <= 0 || o.Quality > 100 {
		o.Quality = 80
	}
	return o
}

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	format := ""
	switch {
	case strings.Contains(ct, "jpeg"):
		format = "jpeg"
	case strings.Contains(ct, "png"):
		format = "png"
	case strings.Contains(ct, "webp"):
		format = "webp"
	default:
		// fallback by extension
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".jpg", ".jpeg":
			format = "jpeg"
		case ".png":
			format = "png"
		case ".webp":
			format = "webp"
		default:
			return nil, fmt.Errorf("format tidak didukung: %s", ct)
		}
	}

	r := bytes.NewReader(all)
	switch format {
	case "jpeg":
		// imaging.Decode menangani orientasi EXIF pada foto kamera
		if img, err := imaging.Decode(r, imaging.AutoOrientation(true)); err == nil {
			return img, nil
		}
		return jpeg.Decode(bytes.NewReader(all))
	case "png":
		return png.Decode(r)
	default:
		return webp.Decode(r)
	}
}

// downscaleIfNeeded: resize keep-aspect hanya bila melebihi batas.
func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 && maxH <= 0 {
		return src
	}
	b := src.Bounds()
	if (maxW > 0 && b.Dx() > maxW) || (maxH > 0 && b.Dy() > maxH) {
		if maxW <= 0 {
			maxW = b.Dx()
		}
		if maxH <= 0 {
			maxH = b.Dy()
		}
		return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
	}
	return src
}

func encodeToWebP(img image.Image, opt WebPOptions) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: opt.Lossless, Quality: opt.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConvertToWebP: decode → downscale → encode WebP.
func ConvertToWebP(data []byte, filename string, opt WebPOptions) ([]byte, error) {
	img, err := decodeImage(data, filename)
	if err != nil {
		return nil, fmt.Errorf("decode gambar: %w", err)
	}
	img = downscaleIfNeeded(img, opt.MaxW, opt.MaxH)
	out, err := encodeToWebP(img, opt)
	if err != nil {
		return nil, fmt.Errorf("encode webp: %w", err)
	}
	return out, nil
}
