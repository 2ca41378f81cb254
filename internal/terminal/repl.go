package terminal

import (
	"bufio"
	"context"
	"io"
	"strings"

	"ai-docqa-client/internal/entity"
	"ai-docqa-client/internal/pkg/localfile"
	"ai-docqa-client/internal/presenter"
	"ai-docqa-client/internal/service"
)

// App is the interactive line client over the core components.
type App struct {
	chat     service.IChatService
	corpus   service.ICorpusService
	upload   service.IUploadService
	renderer *Renderer
	scanner  *bufio.Scanner
}

func NewApp(chat service.IChatService, corpus service.ICorpusService, upload service.IUploadService, in io.Reader, out io.Writer) *App {
	return &App{
		chat:     chat,
		corpus:   corpus,
		upload:   upload,
		renderer: NewRenderer(out),
		scanner:  bufio.NewScanner(in),
	}
}

func (a *App) Renderer() *Renderer {
	return a.renderer
}

// Run reads commands until /quit, EOF or ctx is done.
func (a *App) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		a.renderer.Prompt()

		if !a.scanner.Scan() {
			if err := a.scanner.Err(); err != nil {
				return err
			}
			a.renderer.Info("\nGoodbye!")
			return nil
		}

		if quit := a.Execute(ctx, a.scanner.Text()); quit {
			a.renderer.Info("Goodbye!")
			return nil
		}
	}
}

// Execute runs one input line and reports whether the client should exit.
func (a *App) Execute(ctx context.Context, line string) bool {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "/") {
		a.ask(ctx, line)
		return false
	}

	cmd, arg, _ := strings.Cut(trimmed, " ")
	switch cmd {
	case "/quit", "/exit":
		return true
	case "/help":
		a.renderer.Help()
	case "/upload":
		a.uploadFile(ctx, strings.TrimSpace(arg))
	case "/docs":
		a.renderer.Corpus(presenter.RenderCorpus(a.corpus.Snapshot()))
	case "/refresh":
		a.corpus.Refresh(ctx)
		a.renderer.Corpus(presenter.RenderCorpus(a.corpus.Snapshot()))
	case "/reindex":
		a.renderer.Info("Reindexing...")
		a.corpus.ReindexAll(ctx)
		a.renderer.Corpus(presenter.RenderCorpus(a.corpus.Snapshot()))
	case "/sources":
		a.toggleSources(ctx)
	case "/reset":
		a.chat.Reset(ctx)
		a.renderer.Info("Started a new conversation")
	default:
		a.renderer.Info("Unknown command " + cmd + ", type /help")
	}
	return false
}

func (a *App) ask(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	a.renderer.Pending()
	if !a.chat.SubmitQuery(ctx, text) {
		a.renderer.Info("Still waiting for the previous answer")
		return
	}

	view := presenter.RenderConversation(a.chat.Snapshot())
	if n := len(view.Turns); n > 0 {
		a.renderer.Turn(view.Turns[n-1])
	}
}

func (a *App) toggleSources(ctx context.Context) {
	a.chat.ToggleEvidence(ctx)
	view := presenter.RenderConversation(a.chat.Snapshot())

	for i := len(view.Turns) - 1; i >= 0; i-- {
		turn := view.Turns[i]
		if turn.ShowSources {
			a.renderer.Sources(turn)
			return
		}
	}
	if view.EvidenceVisible {
		a.renderer.Info("No sources to show")
		return
	}
	a.renderer.Info("Sources hidden")
}

// uploadFile goes through the picker entry point, like a browser file dialog.
func (a *App) uploadFile(ctx context.Context, path string) {
	if path == "" {
		a.renderer.Info("Usage: /upload <path>")
		return
	}
	file, err := localfile.Load(path)
	if err != nil {
		a.renderer.Error(err)
		return
	}

	a.renderer.Info("Uploading " + file.Name + "...")
	if _, ok := a.upload.SubmitFromPicker(ctx, []entity.UploadFile{file}); !ok {
		return
	}
	a.renderer.Upload(presenter.RenderUpload(a.upload.State()))
}
