package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/sw33tLie/svcbook/internal/catalog"
	"github.com/sw33tLie/svcbook/internal/pages"
	"github.com/sw33tLie/svcbook/internal/staff"
	"github.com/sw33tLie/svcbook/internal/utils"
	"github.com/sw33tLie/svcbook/internal/view"
	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/kv"
	"github.com/sw33tLie/svcbook/pkg/media"
)

// storeConfig reads the kv backend settings from viper.
func storeConfig() (kv.Config, error) {
	path, err := homedir.Expand(viper.GetString("store.path"))
	if err != nil {
		return kv.Config{}, fmt.Errorf("invalid store path: %w", err)
	}
	return kv.Config{
		Backend:       viper.GetString("store.backend"),
		Path:          path,
		Quota:         viper.GetInt("store.quota"),
		SQLiteTimeout: kv.DefaultDBTimeout,
		RedisAddr:     viper.GetString("redis.addr"),
		RedisPassword: viper.GetString("redis.password"),
		RedisDB:       viper.GetInt("redis.db"),
		RedisPrefix:   viper.GetString("redis.prefix"),
		NATSURL:       viper.GetString("nats.url"),
		NATSBucket:    viper.GetString("nats.bucket"),
	}, nil
}

// openStore opens the configured backend. Callers must close the returned closer.
func openStore(ctx context.Context) (*collection.Store, io.Closer, error) {
	cfg, err := storeConfig()
	if err != nil {
		return nil, nil, err
	}
	if strings.EqualFold(cfg.Backend, "sqlite") && cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("could not create store directory: %w", err)
		}
	}

	utils.Log.Debugf("Opening %s store", cfg.Backend)
	s, closer, err := kv.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return collection.NewStore(s, utils.Log), closer, nil
}

// openPage opens the store and wires the adapters of page.
func openPage(ctx context.Context, page pages.Page) (*pages.App, io.Closer, error) {
	store, closer, err := openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	app, err := pages.Wire(page, pages.Deps{Store: store})
	if err != nil {
		closer.Close()
		return nil, nil, err
	}
	return app, closer, nil
}

// renderOnChange re-prints the catalog or the roster to w after every change
// made through app, the way the pages redraw after a mutation.
func renderOnChange(app *pages.App, w io.Writer) {
	if app.Catalog != nil {
		app.Catalog.Collection().OnChange(func(_ context.Context, services []catalog.ServiceEntry) {
			if err := view.Services(w, services, view.NoServices); err != nil {
				utils.Log.Warnf("Could not render services: %v", err)
			}
		})
	}
	if app.Staff != nil {
		app.Staff.Collection().OnChange(func(_ context.Context, members []staff.StaffEntry) {
			if err := view.Staff(w, members); err != nil {
				utils.Log.Warnf("Could not render staff: %v", err)
			}
		})
	}
}

func mediaReader() media.Reader {
	return media.Reader{MaxBytes: viper.GetInt64("media.max_bytes")}
}

// resolveImage turns an --image value into what is stored: data and http(s)
// URLs are kept, anything else is read from disk and inlined as a data URL.
func resolveImage(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" || media.IsDataURL(ref) || strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil
	}
	img, err := mediaReader().ReadFile(ctx, ref)
	if err != nil {
		return "", err
	}
	utils.Log.Debugf("Inlined %s as %s (%d bytes)", ref, img.MIME, img.Size)
	return img.DataURL, nil
}
