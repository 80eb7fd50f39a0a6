package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/VictorKimathi/medical-ai-assistant/internal/application"
	"github.com/VictorKimathi/medical-ai-assistant/internal/domain"
	config "github.com/VictorKimathi/medical-ai-assistant/internal/infrastructure/configs"
	"github.com/VictorKimathi/medical-ai-assistant/internal/usecase"
	"github.com/VictorKimathi/medical-ai-assistant/pkg/logger"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	file     string
	style    string
	markdown bool
}

func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze one local image and print the model's response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfigs(configPath)
			if err != nil {
				return err
			}

			log, closer, err := logger.NewLogger(cfg.LogFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			svc, err := application.NewAnalysisService(cmd.Context(), cfg, log, opts.style)
			if err != nil {
				return err
			}
			return runAnalyze(cmd, svc, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "image to analyze (.png, .jpg, .jpeg)")
	cmd.Flags().StringVar(&opts.style, "style", "", "session style: prompt or chat (defaults to SESSION_STYLE)")
	cmd.Flags().BoolVar(&opts.markdown, "markdown", false, "render the response as terminal markdown")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runAnalyze(cmd *cobra.Command, svc *usecase.ImageAnalysisService, opts analyzeOptions) error {
	mimeType := domain.MimeTypeFromFileName(opts.file)
	if mimeType == "" {
		return domain.ErrUnsupportedMimeType
	}

	data, err := os.ReadFile(opts.file)
	if err != nil {
		return err
	}

	analysis, err := svc.Analyze(cmd.Context(), domain.Image{Data: data, MimeType: mimeType, FileName: filepath.Base(opts.file)})
	if err != nil {
		return err
	}

	return writeAnalysis(cmd.OutOrStdout(), analysis.Text, opts.markdown)
}

func writeAnalysis(w io.Writer, text string, markdown bool) error {
	if !markdown {
		_, err := io.WriteString(w, text)
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return err
	}
	out, err := r.Render(text)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, out)
	return err
}
