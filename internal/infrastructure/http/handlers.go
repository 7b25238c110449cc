package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/omnichat/omnichat-go/internal/domain/entities"
)

type inferReq struct {
	Conversation entities.Conversation `json:"conversation"`
}

type inferResp struct {
	Response       string  `json:"response"`
	ResponseTimeMS int64   `json:"response_time_ms"`
	TokensPerSec   float64 `json:"tokens_per_sec"`
}

func (s *Server) handleInfer(c *gin.Context) {
	var req inferReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Conversation) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no conversation provided"})
		return
	}

	result, err := s.inferUC.Infer(c.Request.Context(), req.Conversation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, inferResp{
		Response:       result.Response,
		ResponseTimeMS: result.Metrics.ResponseTimeMS,
		TokensPerSec:   result.Metrics.TokensPerSec,
	})
}

func (s *Server) handleUpload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "no file uploaded"})
		return
	}

	dst := filepath.Join(s.uploadDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Error().Err(err).Str("filename", file.Filename).Msg("saving upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "could not save file"})
		return
	}

	doc, err := s.ingestUC.IngestFile(c.Request.Context(), dst)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "filename": doc.Filename})
}

type ingestFolderReq struct {
	FolderPath string `json:"folder_path"`
}

func (s *Server) handleIngestFolder(c *gin.Context) {
	var req ingestFolderReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.FolderPath) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no folder_path provided"})
		return
	}

	info, err := os.Stat(req.FolderPath)
	if err != nil || !info.IsDir() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "folder does not exist"})
		return
	}

	count, err := s.ingestUC.IngestFolder(c.Request.Context(), req.FolderPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingested": count})
}

type documentInfo struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Chars    int    `json:"chars"`
}

func (s *Server) handleDocuments(c *gin.Context) {
	docs, err := s.store.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	infos := make([]documentInfo, len(docs))
	for i, doc := range docs {
		infos[i] = documentInfo{ID: doc.ID, Filename: doc.Filename, Chars: len(doc.Text)}
	}
	c.JSON(http.StatusOK, gin.H{"documents": infos, "count": len(infos)})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
