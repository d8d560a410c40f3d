package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"classificador/client"
	"classificador/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	baseURL string
	texto   string
	arquivo string
	campos  []string
	verbose bool
)

var errClassificacao = errors.New("classificação falhou")

var rootCmd = &cobra.Command{
	Use:   "classificar",
	Short: "Envia um e-mail para o classificador e mostra categoria e resposta sugerida",
	Long: `classificar monta o formulário do e-mail (texto colado e/ou arquivo .txt/.pdf),
envia para POST /classificar e mostra o resultado.

Exemplos:
  classificar --texto "Qual o status do meu chamado?"
  classificar --arquivo email.pdf --url http://localhost:5000`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "url", defaultURL(), "endereço do servidor (env CLASSIFICADOR_URL)")
	rootCmd.Flags().StringVarP(&texto, "texto", "t", "", "texto do e-mail (campo emailText)")
	rootCmd.Flags().StringVarP(&arquivo, "arquivo", "f", "", "arquivo .txt ou .pdf (campo emailFile)")
	rootCmd.Flags().StringArrayVar(&campos, "campo", nil, "campo extra no formato nome=valor (repetível)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log detalhado no stderr")
}

func defaultURL() string {
	if v := strings.TrimSpace(os.Getenv("CLASSIFICADOR_URL")); v != "" {
		return v
	}
	return "http://localhost:5000"
}

func buildForm() (client.Form, error) {
	var form client.Form
	form.Set("emailText", texto)

	for _, c := range campos {
		name, value, ok := strings.Cut(c, "=")
		if !ok || name == "" {
			return form, fmt.Errorf("campo inválido %q (use nome=valor)", c)
		}
		form.Set(name, value)
	}

	if arquivo != "" {
		data, err := os.ReadFile(arquivo)
		if err != nil {
			return form, err
		}
		form.Attach("emailFile", filepath.Base(arquivo), data)
	}
	return form, nil
}

func run(cmd *cobra.Command, args []string) error {
	log, err := logger.NewCLI(verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	form, err := buildForm()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug("enviando formulário", zap.String("url", baseURL), zap.Int("campos", len(form.Fields)), zap.Int("arquivos", len(form.Files)))

	h := client.NewHandler(baseURL, client.NewTerminalDisplay(cmd.OutOrStdout()), client.WithLogger(log))
	if out := h.Submit(ctx, form); out.Failed {
		return errClassificacao
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errClassificacao) {
			fmt.Fprintln(os.Stderr, "erro:", err)
		}
		os.Exit(1)
	}
}
