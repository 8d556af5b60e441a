// Package generate drives conversion of HTML mock-up into specification
// workbook.
package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"
	yaml "gopkg.in/yaml.v3"

	"tsg/markup"
	"tsg/sheet"
	"tsg/state"
	"tsg/techspec"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		src = env.Cfg.Document.InputPath
	}
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = env.Cfg.Document.OutputPath
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// Some old mock-ups neither declare encoding nor use UTF-8
	if cp := cmd.String("input-cp"); len(cp) > 0 {
		env.InputEncoding, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.InputEncoding == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.InputEncoding = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.InputEncoding)
			log.Debug("Forcefully decoding input", zap.String("charset", n))
		}
	}
	env.Quiet = cmd.Bool("quiet")

	out := cmd.Root().Writer
	if out == nil {
		out = os.Stdout
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, out, log)
}

// process handles the conversion independently of CLI framework.
func process(ctx context.Context, src, dst string, out io.Writer, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	doc := &env.Cfg.Document

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("unable to generate reference id: %w", err)
	}
	refID := id.String()

	text, err := markup.Load(src, env.InputEncoding)
	if err != nil {
		return err
	}
	outputName, err := buildOutputPath(src, dst, doc)
	if err != nil {
		return err
	}
	nodes, err := markup.Extract(strings.NewReader(text))
	if err != nil {
		return err
	}
	log.Debug("Markup parsed", zap.String("ref_id", refID), zap.Int("text_nodes", len(nodes)))
	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("source-%s%s", refID, filepath.Ext(src)), src)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	b := techspec.NewBuilder(doc)
	rows := b.Build(nodes)
	for i, r := range rows {
		log.Debug("Row", zap.Int("index", i), zap.String("element", r.ScreenElement), zap.String("label_id", r.LabelID), zap.String("cta", r.CTA))
	}
	st := b.Summarize(rows)
	log.Info("Rows prepared", zap.String("ref_id", refID), zap.Int("rows", st.Rows), zap.Int("labelled", st.Labelled),
		zap.Int("cta", st.CTA), zap.Int("placeholders", st.Placeholders))
	if len(rows) == 0 {
		log.Warn("No classed text found in source, only header will be written", zap.String("source", src))
	}
	if env.Rpt != nil {
		if data, err := yaml.Marshal(rows); err == nil {
			env.Rpt.StoreData(fmt.Sprintf("rows-%s.yaml", refID), data)
		}
	}

	if _, err := os.Stat(outputName); err == nil {
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	}

	header := techspec.ModuleHeader{
		Module:    doc.Module.Module,
		SubModule: doc.Module.SubModule,
		PageName:  doc.Module.PageName,
	}
	opts := sheet.Options{SheetName: doc.SheetName}
	if err := sheet.Write(ctx, outputName, header, rows, opts, log.Named("sheet")); err != nil {
		return err
	}
	log.Info("Workbook created", zap.String("to", outputName), zap.String("ref_id", refID))

	if env.Rpt != nil {
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, outputExt), outputName)
	}

	if env.Quiet || !doc.PrintTable {
		return nil
	}

	tbl, err := sheet.Read(outputName, opts.SheetName)
	if err != nil {
		return err
	}
	if back := tbl.SpecRows(); !(len(back) == 0 && len(rows) == 0) && !reflect.DeepEqual(back, rows) {
		log.Warn("Workbook content differs from generated rows", zap.Int("expected", len(rows)), zap.Int("actual", len(back)))
	}
	_, err = fmt.Fprintln(out, sheet.Render(tbl))
	return err
}
