package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"doc-assistant/internal/assistant"
	"doc-assistant/internal/client"
	"doc-assistant/internal/session"
)

func chatCmd() *cobra.Command {
	var server string

	cmd := &cobra.Command{
		Use:   "chat <file>",
		Short: "Upload a PDF or TXT document and interact with it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api := client.New(server)
			sess := session.New()
			loop := &chatLoop{
				api:  api,
				sess: sess,
				in:   bufio.NewReader(cmd.InOrStdin()),
				out:  cmd.OutOrStdout(),
			}
			return loop.run(cmd.Context(), args[0])
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://localhost:8080", "backend base URL")
	return cmd
}

type chatLoop struct {
	api  *client.Client
	sess *session.Session
	in   *bufio.Reader
	out  io.Writer
}

func (l *chatLoop) run(ctx context.Context, path string) error {
	if err := l.upload(ctx, path); err != nil {
		return err
	}

	for {
		l.printf("\nChoose a mode: [1] Ask Anything  [2] Challenge Me  [q] Quit\n> ")
		choice, err := l.readLine()
		if err != nil {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			l.sess.EnterAsk()
			l.askLoop(ctx)
		case "2":
			l.sess.EnterChallenge()
			l.challenge(ctx)
		case "q", "quit", "exit":
			return nil
		default:
			l.printf("Unknown choice.\n")
		}
	}
}

func (l *chatLoop) upload(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	l.printf("Uploading %s...\n", filepath.Base(path))
	res, err := l.api.Upload(ctx, filepath.Base(path), "", data)
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}
	l.printf("%s\n", res.Message)

	l.printf("Generating summary...\n")
	summary, err := l.api.Summarize(ctx, res.FileID)
	if err != nil {
		// A failed summary leaves the uploaded document usable.
		l.printf("Could not generate summary: %v\n", err)
		summary = ""
	}
	l.sess.SetDocument(res.FileID, summary)

	if summary != "" {
		l.printf("\n--- Summary ---\n%s\n", summary)
	}
	return nil
}

func (l *chatLoop) askLoop(ctx context.Context) {
	l.printf("Ask Anything mode. Empty question returns to the menu.\n")
	for {
		l.printf("\nYour question: ")
		question, err := l.readLine()
		if err != nil || strings.TrimSpace(question) == "" {
			return
		}

		ans, err := l.api.Ask(ctx, l.sess.FileID, strings.TrimSpace(question))
		if err != nil {
			l.printf("Error getting answer: %v\n", err)
			continue
		}
		l.printf("\nAnswer: %s\nJustification: %s\n", ans.Answer, ans.Justification)
	}
}

func (l *chatLoop) challenge(ctx context.Context) {
	l.printf("Generating questions...\n")
	questions, err := l.api.GenerateQuestions(ctx, l.sess.FileID)
	if err != nil {
		l.printf("Error generating questions: %v\n", err)
		return
	}
	l.sess.SetQuestions(questions)

	for i, q := range questions {
		l.printf("\nQuestion %d: %s\nYour answer (empty to skip): ", i+1, q.Question)
		answer, err := l.readLine()
		if err != nil {
			return
		}
		l.sess.SetAnswer(i, strings.TrimSpace(answer))
	}

	l.printf("\nEvaluating your answers...\n")
	results := l.sess.Submit(ctx, func(ctx context.Context, question, userAnswer string) (assistant.Evaluation, error) {
		return l.api.EvaluateAnswer(ctx, l.sess.FileID, question, userAnswer)
	})

	for i, res := range results {
		severity := session.Classify(res.Verdict)
		l.printf("\n--- Question %d ---\n", i+1)
		l.printf("%s\n", res.Question)
		l.printf("Your answer: %s\n", res.UserAnswer)
		l.printf("[%s] %s\n", severity, res.Verdict)
		l.printf("Justification: %s\n", res.Justification)
	}
}

func (l *chatLoop) readLine() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *chatLoop) printf(format string, args ...any) {
	fmt.Fprintf(l.out, format, args...)
}
