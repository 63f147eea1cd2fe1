package inspector

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/codeitem/config"
	"github.com/viant/codeitem/document"
	"github.com/viant/codeitem/inspector/csharp"
	"github.com/viant/codeitem/inspector/golang"
	"github.com/viant/codeitem/inspector/java"
	"github.com/viant/codeitem/item"
)

// Inspector discovers code items of a language
type Inspector interface {
	// InspectSource parses a document and returns its items
	InspectSource(ctx context.Context, doc *document.Document) ([]item.Item, error)

	// IsTest returns true if file name denotes a test source
	IsTest(name string) bool
}

// File represents an inspected document with its items ordered by start offset
type File struct {
	Document *document.Document
	Items    []item.Item
}

// Factory creates appropriate inspectors based on file extension and applies config filters
type Factory struct {
	config *config.Config
	kinds  map[item.Kind]bool
	fs     afs.Service
	logger zerolog.Logger
}

// Option represents a factory option
type Option func(f *Factory)

// WithLogger sets factory logger
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithFS sets file system service
func WithFS(fs afs.Service) Option {
	return func(f *Factory) {
		f.fs = fs
	}
}

// NewFactory creates a new inspector factory with the given config
func NewFactory(cfg *config.Config, options ...Option) (*Factory, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	kinds, err := cfg.ItemKinds()
	if err != nil {
		return nil, err
	}
	ret := &Factory{config: cfg, kinds: kinds, logger: zerolog.Nop()}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	return ret, nil
}

// GetInspector returns an appropriate inspector based on file extension
func (f *Factory) GetInspector(URL string) (Inspector, error) {
	switch ext := strings.ToLower(path.Ext(URL)); ext {
	case ".go":
		return golang.NewInspector(), nil
	case ".java":
		return java.NewInspector(), nil
	case ".cs":
		return csharp.NewInspector(), nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", ext)
	}
}

// IsSupported returns true if an inspector exists for URL
func (f *Factory) IsSupported(URL string) bool {
	_, err := f.GetInspector(URL)
	return err == nil
}

// InspectDocument inspects a loaded document
func (f *Factory) InspectDocument(ctx context.Context, doc *document.Document) (*File, error) {
	inspector, err := f.GetInspector(doc.URL)
	if err != nil {
		return nil, err
	}
	items, err := inspector.InspectSource(ctx, doc)
	if err != nil {
		return nil, err
	}
	ret := &File{Document: doc}
	for _, anItem := range items {
		if f.kinds != nil && !f.kinds[item.Kind(anItem.TypeString())] {
			continue
		}
		if !f.config.IncludePrivate && anItem.Access() == item.AccessPrivate {
			continue
		}
		ret.Items = append(ret.Items, anItem)
	}
	sort.SliceStable(ret.Items, func(i, j int) bool {
		return ret.Items[i].Base().StartOffset < ret.Items[j].Base().StartOffset
	})
	f.logger.Debug().Str("url", doc.URL).Int("items", len(ret.Items)).Msg("inspected")
	return ret, nil
}

// InspectFile loads and inspects a file
func (f *Factory) InspectFile(ctx context.Context, URL string) (*File, error) {
	if !f.IsSupported(URL) {
		return nil, fmt.Errorf("unsupported file type: %s", path.Ext(URL))
	}
	doc, err := document.Load(ctx, f.fs, URL)
	if err != nil {
		return nil, err
	}
	return f.InspectDocument(ctx, doc)
}

// InspectDir walks a directory tree and inspects every supported file, hidden directories are skipped.
// Files that fail to inspect are logged and left out.
func (f *Factory) InspectDir(ctx context.Context, URL string) ([]*File, error) {
	var locations []string
	visitor := func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		location := url.Join(url.Join(baseURL, parent), info.Name())
		if info.IsDir() {
			if isHidden(info.Name()) {
				f.logger.Debug().Str("url", location).Msg("skipped hidden")
				return false, nil
			}
			return true, nil
		}
		inspector, err := f.GetInspector(info.Name())
		if err != nil {
			f.logger.Trace().Str("url", location).Msg("unsupported")
			return true, nil
		}
		if f.config.SkipTests && inspector.IsTest(info.Name()) {
			f.logger.Debug().Str("url", location).Msg("skipped test")
			return true, nil
		}
		locations = append(locations, location)
		return true, nil
	}
	if err := f.fs.Walk(ctx, URL, visitor); err != nil {
		return nil, fmt.Errorf("failed to walk %v: %w", URL, err)
	}
	sort.Strings(locations)
	var files []*File
	for _, location := range locations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		file, err := f.InspectFile(ctx, location)
		if err != nil {
			f.logger.Warn().Err(err).Str("url", location).Msg("failed to inspect")
			continue
		}
		files = append(files, file)
	}
	return files, nil
}

// isHidden returns true for hidden directory names, i.e. .git
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
