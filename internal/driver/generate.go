// Package driver runs the objc generators over linked descriptors, either
// for the command line or as a protoc plugin.
package driver

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/goatx/protoc-gen-objc/internal/logger"
	"github.com/goatx/protoc-gen-objc/internal/output"
	"github.com/goatx/protoc-gen-objc/objc"
)

// GenerateFile renders the .pbobjc.m unit of file.
func GenerateFile(file protoreflect.FileDescriptor, opts objc.Options) output.Unit {
	g := objc.NewFileGenerator(file, opts)
	p := objc.NewPrinter()
	g.GenerateSource(p)
	return output.Unit{Name: g.Path() + objc.SourceSuffix, Content: p.String()}
}

// Generate renders files with at most jobs generators running at once.
// Units come back in the order of files.
func Generate(ctx context.Context, files []protoreflect.FileDescriptor, opts objc.Options, jobs int) ([]output.Unit, error) {
	log := logger.Named("driver")
	start := time.Now()

	if jobs < 1 {
		jobs = 1
	}
	units := make([]output.Unit, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(jobs)
	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			units[i] = GenerateFile(file, opts)
			log.Debugw("generated file",
				logger.FieldFile, file.Path(),
				logger.FieldOutput, units[i].Name,
				logger.FieldSize, len(units[i].Content))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "generation interrupted")
	}

	log.Infow("generation finished",
		logger.FieldCount, len(units),
		logger.FieldJobs, jobs,
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return units, nil
}
