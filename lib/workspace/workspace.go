package workspace

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/bethyw/lib/consoles"
	"github.com/pescuma/bethyw/lib/datasets"
	"github.com/pescuma/bethyw/lib/filters"
	"github.com/pescuma/bethyw/lib/importers"
	"github.com/pescuma/bethyw/lib/model"
	"github.com/pescuma/bethyw/lib/utils"
)

// Workspace loads the dataset files of a directory into a single registry.
type Workspace struct {
	console  consoles.Console
	progress io.Writer
	dir      string
	areas    *model.Areas
}

// NewWorkspace uses the files in dir. The progress bar is written to progress,
// which can be io.Discard.
func NewWorkspace(console consoles.Console, dir string, progress io.Writer) (*Workspace, error) {
	dir, err := utils.PathAbs(dir)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid datasets dir %v", dir)
	}
	if !stat.IsDir() {
		return nil, errors.Errorf("not a directory: %v", dir)
	}

	return &Workspace{
		console:  console,
		progress: progress,
		dir:      dir,
		areas:    model.NewAreas(),
	}, nil
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Dir() string {
	return w.dir
}

func (w *Workspace) Areas() *model.Areas {
	return w.areas
}

// Load imports the areas file and then the datasets with the given codes, in
// catalogue order. No codes means every dataset.
func (w *Workspace) Load(codes []string, f *filters.Filters, opts *importers.Options) error {
	files, err := w.selectFiles(codes)
	if err != nil {
		return err
	}

	w.console.Printf("Importing %v files from %v...\n", len(files), w.dir)

	bar := utils.NewProgressBar(len(files), w.progress)
	for _, file := range files {
		path := filepath.Join(w.dir, file.File)
		bar.Describe(utils.TruncateFilename(path))

		err = w.ImportFile(path, file, f, opts)
		if err != nil {
			return err
		}

		_ = bar.Add(1)
	}

	w.console.Printf("Imported %v areas\n", w.areas.Size())

	return nil
}

func (w *Workspace) selectFiles(codes []string) ([]datasets.InputFile, error) {
	codes = filters.Normalize(codes)
	if len(codes) == 0 {
		return datasets.List(), nil
	}

	for _, c := range codes {
		if _, err := datasets.Find(c); err != nil {
			return nil, err
		}
	}

	result := []datasets.InputFile{datasets.Areas}
	for _, d := range datasets.Datasets {
		if lo.Contains(codes, d.Code) {
			result = append(result, d)
		}
	}

	return result, nil
}

// ImportFile imports a single file described by file into the registry.
func (w *Workspace) ImportFile(path string, file datasets.InputFile, f *filters.Filters, opts *importers.Options) error {
	input, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "error opening dataset %v", file.Code)
	}
	defer input.Close()

	w.console.PushPrefix("%v: ", file.Code)
	defer w.console.PopPrefix()

	err = importers.Populate(w.console, w.areas, input, file.Type, file.Cols, f, opts)
	if err != nil {
		return errors.Wrapf(err, "error importing %v", path)
	}

	return nil
}
