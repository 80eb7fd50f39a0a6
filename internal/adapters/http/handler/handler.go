package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"

	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/dto"
	"github.com/VictorKimathi/medical-ai-assistant/internal/adapters/http/utils"
	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	"github.com/VictorKimathi/medical-ai-assistant/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	indexTemplate = "index.html"
	imageField    = "image"
)

type AnalysisHandler struct {
	AnalysisSvc    *usecase.ImageAnalysisService
	Logger         domain.LoggingRepository
	Validate       *validator.Validate
	MaxUploadBytes int64
}

func NewAnalysisHandler(
	analysissvc *usecase.ImageAnalysisService,
	logger domain.LoggingRepository,
	maxuploadbytes int64,
) (*AnalysisHandler, error) {
	validate, err := utils.NewUploadValidator()
	if err != nil {
		return nil, domain.NewDomainError(domain.ErrCodeInternal, "failed to register validation", err)
	}
	return &AnalysisHandler{AnalysisSvc: analysissvc, Logger: logger, Validate: validate, MaxUploadBytes: maxuploadbytes}, nil
}

func (h *AnalysisHandler) HomePageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, h.pageView(c))
}

func (h *AnalysisHandler) AnalyzePageHandler(c *gin.Context) {
	view := h.pageView(c)

	image, err := h.readUpload(c)
	if errors.Is(err, domain.ErrMissingImage) {
		c.HTML(http.StatusOK, indexTemplate, view)
		return
	}
	if err != nil {
		h.renderPageError(c, view, err)
		return
	}

	analysis, err := h.AnalysisSvc.Analyze(c.Request.Context(), image)
	if err != nil {
		h.renderPageError(c, view, err)
		return
	}

	view.FileName = image.FileName
	view.Result = analysis.Text
	view.HasResult = true
	view.Success = domain.AnalysisComplete
	c.HTML(http.StatusOK, indexTemplate, view)
}

func (h *AnalysisHandler) AnalyzeAPIHandler(c *gin.Context) {
	image, err := h.readUpload(c)
	if err != nil {
		httpErr := dto.MapErr(err)
		c.JSON(httpErr.StatusCode, httpErr)
		return
	}

	analysis, err := h.AnalysisSvc.Analyze(c.Request.Context(), image)
	if err != nil {
		httpErr := dto.MapErr(err)
		c.JSON(httpErr.StatusCode, httpErr)
		return
	}

	c.JSON(http.StatusOK, dto.AnalysisResponse{
		Analysis:   analysis.Text,
		Model:      analysis.Model,
		Style:      string(analysis.Style),
		DurationMs: analysis.Duration.Milliseconds(),
	})
}

func (h *AnalysisHandler) HealthHandler(c *gin.Context) {
	var memStat runtime.MemStats
	runtime.ReadMemStats(&memStat)

	var resp dto.HealthResponse
	resp.Status.StatusCode = http.StatusOK
	resp.Model.Name = h.AnalysisSvc.AI.Model()
	resp.Model.SessionStyle = string(h.AnalysisSvc.AI.Style())
	resp.Memory.AllocMB = memStat.Alloc / 1024 / 1024
	resp.Memory.TotalAllocMB = memStat.TotalAlloc / 1024 / 1024
	resp.Memory.SysMB = memStat.Sys / 1024 / 1024
	resp.Memory.NumGC = memStat.NumGC
	resp.Memory.NumGoroutine = runtime.NumGoroutine()

	c.JSON(http.StatusOK, resp)
}

func (h *AnalysisHandler) pageView(c *gin.Context) dto.PageView {
	return dto.PageView{
		Title:       domain.PageTitle,
		Header:      domain.PageHeader,
		Subheader:   domain.PageSubheader,
		UploadLabel: domain.UploadLabel,
		SubmitLabel: domain.SubmitLabel,
		Accept:      strings.Join(domain.AllowedExtensions, ","),
		Reminder:    domain.UploadReminder,
		RequestID:   c.GetString("RequestID"),
	}
}

func (h *AnalysisHandler) renderPageError(c *gin.Context, view dto.PageView, err error) {
	httpErr := dto.MapErr(err)
	view.Error = httpErr.Message
	c.HTML(httpErr.StatusCode, indexTemplate, view)
}

// readUpload pulls the image part out of the multipart form. A request with
// no file yields domain.ErrMissingImage.
func (h *AnalysisHandler) readUpload(c *gin.Context) (domain.Image, error) {
	fh, err := c.FormFile(imageField)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr), strings.Contains(err.Error(), "request body too large"):
			return domain.Image{}, h.errTooLarge()
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			return domain.Image{}, domain.ErrMissingImage
		default:
			return domain.Image{}, domain.NewDomainError(domain.ErrCodeValidation, "failed to read multipart form", err)
		}
	}

	if fh.Size > h.MaxUploadBytes {
		return domain.Image{}, h.errTooLarge()
	}

	upload := dto.UploadedImage{
		FileName: fh.Filename,
		MimeType: utils.DeclaredMimeType(fh.Header.Get("Content-Type"), fh.Filename),
		Size:     fh.Size,
	}
	if err := h.Validate.Struct(upload); err != nil {
		return domain.Image{}, uploadValidationErr(err)
	}

	f, err := fh.Open()
	if err != nil {
		return domain.Image{}, domain.NewDomainError(domain.ErrCodeInternal, "failed to open uploaded image", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.Image{}, domain.NewDomainError(domain.ErrCodeInternal, "failed to read uploaded image", err)
	}

	return domain.Image{Data: data, MimeType: upload.MimeType, FileName: fh.Filename}, nil
}

func (h *AnalysisHandler) errTooLarge() error {
	return domain.NewDomainError(domain.ErrCodePayloadTooLarge, fmt.Sprintf("image must not be larger than %d bytes", h.MaxUploadBytes), nil)
}

func uploadValidationErr(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Size" {
				return domain.ErrEmptyImage
			}
		}
	}
	return domain.NewDomainError(domain.ErrCodeValidation, domain.ErrUnsupportedMimeType.Message, err)
}
