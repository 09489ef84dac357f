package root

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"gamedo/internal/app"
	"gamedo/internal/config"
	"gamedo/internal/engine"
	"gamedo/internal/render"
	"gamedo/internal/storage"
	"gamedo/internal/ui"
)

func openStore(ctx context.Context) (*storage.Store, func(), error) {
	if errs := config.Validate(cfg); len(errs) > 0 {
		return nil, nil, errs[0]
	}
	kv, cleanup, err := storage.OpenKV(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("store opened", "path", cfg.DBPath)
	return storage.NewStore(kv, logger), cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	store, cleanup, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	curve, err := engine.NewCurve(cfg.CurveSettings())
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	svc := engine.NewService(ctx, store, engine.Options{
		Curve:       curve,
		OnTimeBonus: cfg.Leveling.OnTimeBonus,
		Logger:      logger,
	})
	return svc, cleanup, nil
}

// openController wires a controller that prints notices to out and prompts on in.
func openController(ctx context.Context, in io.Reader, out io.Writer) (*app.Controller, func(), error) {
	svc, cleanup, err := openService(ctx)
	if err != nil {
		return nil, nil, err
	}
	ctrl := app.NewController(svc, render.NewPaginator(cfg.PageSize), printNotifier(out), promptConfirmer(in, out))
	return ctrl, cleanup, nil
}

func printNotifier(out io.Writer) app.Notifier {
	return app.NotifierFunc(func(kind app.NoticeKind, msg string) {
		switch kind {
		case app.NoticeLevelUp:
			fmt.Fprintln(out, ui.BadgeLevelUp+" "+ui.Gold.Render(msg))
		case app.NoticeBadge:
			fmt.Fprintln(out, ui.Gold.Render(ui.IconTrophy+" "+msg))
		case app.NoticeSuccess:
			fmt.Fprintln(out, ui.Good.Render(msg))
		case app.NoticeWarning:
			fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+msg))
		default:
			fmt.Fprintln(out, ui.Muted.Render(msg))
		}
	})
}

func promptConfirmer(in io.Reader, out io.Writer) app.Confirmer {
	if assumeYes {
		return app.AlwaysConfirm
	}
	r := bufio.NewReader(in)
	return app.ConfirmFunc(func(msg string) bool {
		fmt.Fprintf(out, "%s %s ", ui.Warn.Render(msg), ui.Muted.Render("[y/N]"))
		line, _ := r.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	})
}
