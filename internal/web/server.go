package web

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/fmueller/vimeoscribe/internal/fetch"
	"github.com/fmueller/vimeoscribe/internal/media"
	"github.com/fmueller/vimeoscribe/internal/transcribe"
	"github.com/fmueller/vimeoscribe/internal/vimeo"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

//go:embed index.html
var indexHTML string

const sessionCookie = "vimeoscribe_session"

type Config struct {
	Fetcher *fetch.Fetcher
	Engine  transcribe.Engine
	Logger  *zap.Logger
}

// Server wires the single-page UI to the fetch and transcription stages.
// Each submit runs validate, fetch, and transcribe to completion in one
// request; there is no background work.
type Server struct {
	app      *fiber.App
	logger   *zap.Logger
	sessions *sessionStore

	fetchFn      func(ctx context.Context, url string) (fetch.Result, error)
	transcribeFn func(ctx context.Context, req transcribe.Request) (string, error)
	hasAPIKeyFn  func() bool
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		logger:      logger,
		sessions:    newSessionStore(),
		hasAPIKeyFn: transcribe.HasAPIKey,
	}
	if cfg.Fetcher != nil {
		s.fetchFn = cfg.Fetcher.Fetch
	}
	if cfg.Engine != nil {
		s.transcribeFn = cfg.Engine.Transcribe
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "vimeoscribe",
		DisableStartupMessage: true,
	})
	s.registerRoutes()

	return s
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes() {
	s.app.Get("/", s.handleIndex)

	api := s.app.Group("/api")
	api.Get("/state", s.handleState)
	api.Post("/transcribe", s.handleTranscribe)
	api.Post("/clear", s.handleClear)
	api.Get("/audio", s.handleAudio)
	api.Get("/transcript.txt", s.handleTranscriptDownload)
}

type errorResponse struct {
	Stage string `json:"stage"`
	Error string `json:"error"`
}

type infoPayload struct {
	Title    string `json:"title"`
	Uploader string `json:"uploader"`
	Duration int    `json:"duration"`
}

type stateResponse struct {
	HasAudio   bool         `json:"hasAudio"`
	Ext        string       `json:"ext,omitempty"`
	Info       *infoPayload `json:"info,omitempty"`
	InfoText   string       `json:"infoText,omitempty"`
	Transcript string       `json:"transcript,omitempty"`
	Warning    string       `json:"warning,omitempty"`
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(indexHTML)
}

func (s *Server) handleState(c *fiber.Ctx) error {
	return c.JSON(s.state(s.sessionID(c)))
}

func (s *Server) handleTranscribe(c *fiber.Ctx) error {
	var body struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Stage: "validate",
			Error: "invalid request body",
		})
	}

	url := strings.TrimSpace(body.URL)
	if !vimeo.IsValidURL(url) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Stage: "validate",
			Error: "please provide a valid Vimeo URL",
		})
	}

	id := s.sessionID(c)

	res, err := s.fetchFn(c.Context(), url)
	if err != nil {
		s.logger.Warn("audio download failed", zap.String("url", url), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{
			Stage: "fetch",
			Error: fmt.Sprintf("audio download failed: %v", err),
		})
	}

	// The downloaded artifact is stored before transcription starts so it
	// survives a transcription failure and stays available for replay.
	s.sessions.update(id, func(sess *Session) {
		sess.Audio = res.Audio
		sess.Ext = res.Ext
		sess.Info = res.Info
		sess.Transcript = ""
	})

	text, err := s.transcribeFn(c.Context(), transcribe.Request{
		Audio:    res.Audio,
		Filename: "audio." + res.Ext,
		MIME:     media.MIMEForExt(res.Ext),
	})
	if err != nil {
		s.logger.Warn("transcription failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(errorResponse{
			Stage: "transcribe",
			Error: fmt.Sprintf("transcription failed: %v", err),
		})
	}

	s.sessions.update(id, func(sess *Session) {
		sess.Transcript = text
	})

	return c.JSON(s.state(id))
}

func (s *Server) handleClear(c *fiber.Ctx) error {
	id := s.sessionID(c)
	s.sessions.update(id, func(sess *Session) {
		*sess = Session{}
	})
	return c.JSON(s.state(id))
}

func (s *Server) handleAudio(c *fiber.Ctx) error {
	sess := s.sessions.snapshot(s.sessionID(c))
	if len(sess.Audio) == 0 {
		return c.SendStatus(fiber.StatusNotFound)
	}

	c.Set(fiber.HeaderContentType, media.MIMEForExt(sess.Ext))
	return c.Send(sess.Audio)
}

func (s *Server) handleTranscriptDownload(c *fiber.Ctx) error {
	sess := s.sessions.snapshot(s.sessionID(c))
	if sess.Transcript == "" {
		return c.SendStatus(fiber.StatusNotFound)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transcript.txt"`)
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString(sess.Transcript)
}

func (s *Server) state(id string) stateResponse {
	sess := s.sessions.snapshot(id)

	resp := stateResponse{
		HasAudio:   len(sess.Audio) > 0,
		Transcript: sess.Transcript,
	}
	if resp.HasAudio {
		resp.Ext = sess.Ext
		resp.Info = &infoPayload{
			Title:    sess.Info.Title,
			Uploader: sess.Info.Uploader,
			Duration: sess.Info.Duration,
		}
		resp.InfoText = media.FormatInfo(sess.Info.Title, sess.Info.Uploader, sess.Info.Duration)
	}
	if !s.hasAPIKeyFn() {
		resp.Warning = transcribe.MissingKeyWarning
	}

	return resp
}

func (s *Server) sessionID(c *fiber.Ctx) string {
	if id := c.Cookies(sessionCookie); id != "" {
		return id
	}

	id := utils.UUIDv4()
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    id,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return id
}
