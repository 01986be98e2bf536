package portfolio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1600
	jpegQuality   = 85
	maxUploadSize = 10 << 20 // 10MB
)

// processImage decodes an image from src, downscales it to maxImageWidth if
// wider, and encodes it as JPEG. Returns the slugified filename and the
// encoded bytes.
func processImage(src io.Reader, originalName string) (string, []byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > maxImageWidth {
		newH := h * maxImageWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", nil, fmt.Errorf("encode jpeg: %w", err)
	}

	return slugifyFilename(originalName) + ".jpg", buf.Bytes(), nil
}

// slugifyFilename converts a filename (without extension) to a URL-safe slug.
func slugifyFilename(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	if s := Slugify(base); s != "" {
		return s
	}
	return "image"
}

type uploadResponse struct {
	Uploaded int      `json:"uploaded"`
	Failed   int      `json:"failed"`
	URLs     []string `json:"urls,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// handleImageUpload accepts a multipart batch of image files for one
// section. Files are stored and recorded one at a time; the response
// reports per-file successes and failures independently.
func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}

	sectionID := c.FormValue("sectionId")
	if sectionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Section is required"})
	}
	baseOrder, _ := strconv.Atoi(c.FormValue("order"))
	caption := c.FormValue("caption")
	altText := c.FormValue("altText")

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No image files provided"})
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "No image files provided"})
	}

	var files []UploadFile
	for _, fh := range headers {
		if fh.Size > maxUploadSize {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fh.Filename + " is too large (max 10MB)"})
		}
		src, err := fh.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return err
		}
		files = append(files, UploadFile{Name: fh.Filename, Data: data})
	}

	results := a.Catalog.UploadImages(sectionID, files, baseOrder, caption, altText)

	resp := uploadResponse{}
	for _, r := range results {
		if r.Err != nil {
			resp.Failed++
			resp.Errors = append(resp.Errors, r.Err.Error())
			continue
		}
		resp.Uploaded++
		resp.URLs = append(resp.URLs, r.URL)
	}
	if resp.Uploaded > 0 {
		a.Cache.Invalidate()
	}
	return c.JSON(http.StatusOK, resp)
}

// handleImageDelete removes the storage object, then the row. The image URL
// is passed as a query parameter so the storage path can be derived.
func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return unauthorized(c)
	}
	id := c.Param("id")
	url := c.QueryParam("url")
	if err := a.Catalog.DeleteImage(id, url); err != nil {
		if err == ErrUnresolvablePath {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Unable to determine storage path"})
		}
		c.Logger().Errorf("image delete failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete image"})
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
