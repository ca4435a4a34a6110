package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mmdatafocus/grange_backend/config"
	"github.com/mmdatafocus/grange_backend/utils"
	"github.com/sirupsen/logrus"
)

const (
	maxUploadSizeBytes int64 = 10 * 1024 * 1024
	thumbnailWidth           = 256
	thumbnailPrefix          = "thumb-"
)

type uploadKind struct {
	folder     string
	extensions map[string]bool
	mimeTypes  map[string]bool
	thumbnail  bool
}

var photoUpload = uploadKind{
	folder: utils.StorageFolderPhotos,
	extensions: map[string]bool{
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	},
	mimeTypes: map[string]bool{
		"image/jpeg":    true,
		"image/jpg":     true,
		"image/png":     true,
		"image/svg+xml": true,
	},
	thumbnail: true,
}

var documentUpload = uploadKind{
	folder: utils.StorageFolderFiles,
	extensions: map[string]bool{
		".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
	},
	mimeTypes: map[string]bool{
		"application/pdf":          true,
		"application/msword":       true,
		"application/vnd.ms-excel": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
	},
}

var (
	errBelongingRequired = errors.New("belonging is required")
	errUnsupportedFile   = errors.New("unsupported file type")
	errFileTooLarge      = errors.New("file size exceeds 10MB limit")
)

// validate returns the lower-cased extension of an allowed file.
func (k uploadKind) validate(filename string, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !k.extensions[ext] {
		return "", errUnsupportedFile
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !k.mimeTypes[strings.ToLower(mediaType)] {
		return "", errUnsupportedFile
	}
	return ext, nil
}

func objectName(belonging string, ext string) (string, error) {
	prefix := sanitizeSegment(strings.TrimSpace(belonging))
	if prefix == "" {
		return "", errBelongingRequired
	}
	return prefix + "-" + uuid.NewString() + ext, nil
}

func sanitizeSegment(input string) string {
	var out strings.Builder
	for _, r := range input {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			out.WriteRune(r)
		}
	}
	return out.String()
}

func (s *server) uploadHandler(kind uploadKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := utils.GetUserIdFromContext(c.Request.Context()); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
			return
		}
		if fileHeader.Size > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFileTooLarge.Error()})
			return
		}
		contentType := fileHeader.Header.Get("Content-Type")
		ext, err := kind.validate(fileHeader.Filename, contentType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		name, err := objectName(c.PostForm("belonging"), ext)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxUploadSizeBytes+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file"})
			return
		}
		if int64(len(data)) > maxUploadSizeBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFileTooLarge.Error()})
			return
		}

		ctx := c.Request.Context()
		if err := s.storage.Put(ctx, kind.folder, name, data, contentType); err != nil {
			config.LogError(s.logger, "uploads", "uploadHandler", "put object", name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file"})
			return
		}
		if kind.thumbnail {
			if err := s.storeThumbnail(ctx, kind.folder, name, data); err != nil {
				// the original stays usable without a thumbnail
				s.logger.WithFields(logrus.Fields{
					"module": "uploads",
					"object": name,
				}).Warn("thumbnail not generated: " + err.Error())
			}
		}
		c.JSON(http.StatusOK, gin.H{"path": "/storage/" + kind.folder + "/" + name})
	}
}

func (s *server) storeThumbnail(ctx context.Context, folder string, name string, data []byte) error {
	thumb, err := thumbnail(name, data)
	if err != nil {
		return err
	}
	return s.storage.Put(ctx, folder, thumbnailPrefix+name, thumb, mime.TypeByExtension(filepath.Ext(name)))
}

// thumbnail scales the image to thumbnailWidth keeping its aspect ratio and
// encodes it in the format named by the file extension.
func thumbnail(name string, data []byte) ([]byte, error) {
	format, err := imaging.FormatFromFilename(name)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}
	resized := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *server) serveObjectHandler(folder string, param string, authenticated bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authenticated {
			if _, ok := utils.GetUserIdFromContext(c.Request.Context()); !ok {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
				return
			}
		}
		name := c.Param(param)
		rc, err := s.storage.Get(c.Request.Context(), folder, name)
		if err != nil {
			if !errors.Is(err, utils.ErrObjectNotFound) {
				config.LogError(s.logger, "uploads", "serveObjectHandler", "get object", name, err)
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": utils.ErrObjectNotFound.Error()})
			return
		}
		defer rc.Close()

		contentType := mime.TypeByExtension(filepath.Ext(name))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		c.Header("Content-Type", contentType)
		c.Status(http.StatusOK)
		_, _ = io.Copy(c.Writer, rc)
	}
}
