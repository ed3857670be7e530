package driver

import (
	"context"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"github.com/goatx/protoc-gen-objc/internal/config"
	"github.com/goatx/protoc-gen-objc/internal/logger"
)

const supportedFeatures = uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)

// Run speaks the protoc plugin protocol: it reads a CodeGeneratorRequest
// from in and writes the CodeGeneratorResponse to out. Request-level
// failures are reported inside the response; only I/O and encoding
// failures are returned.
func Run(ctx context.Context, in io.Reader, out io.Writer, v *viper.Viper) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read plugin request")
	}
	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(data, req); err != nil {
		return errors.Wrap(err, "failed to decode plugin request")
	}

	var resp *pluginpb.CodeGeneratorResponse
	cfg, err := configure(v, req.GetParameter())
	if err != nil {
		resp = errorResponse(err)
	} else {
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
			return err
		}
		resp = respond(ctx, req, cfg)
	}

	data, err = proto.Marshal(resp)
	if err != nil {
		return errors.Wrap(err, "failed to encode plugin response")
	}
	if _, err := out.Write(data); err != nil {
		return errors.Wrap(err, "failed to write plugin response")
	}
	return nil
}

// Handle answers req using the settings in v overlaid with the request
// parameter.
func Handle(ctx context.Context, req *pluginpb.CodeGeneratorRequest, v *viper.Viper) *pluginpb.CodeGeneratorResponse {
	cfg, err := configure(v, req.GetParameter())
	if err != nil {
		return errorResponse(err)
	}
	return respond(ctx, req, cfg)
}

func configure(v *viper.Viper, parameter string) (*config.Config, error) {
	if err := config.ApplyParameters(v, parameter); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func respond(ctx context.Context, req *pluginpb.CodeGeneratorRequest, cfg *config.Config) *pluginpb.CodeGeneratorResponse {
	log := logger.Named("plugin")

	files, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{File: req.GetProtoFile()})
	if err != nil {
		return errorResponse(errors.Wrap(err, "failed to link request files"))
	}

	targets := make([]protoreflect.FileDescriptor, 0, len(req.GetFileToGenerate()))
	for _, name := range req.GetFileToGenerate() {
		fd, err := files.FindFileByPath(name)
		if err != nil {
			return errorResponse(errors.Wrapf(err, "file to generate %s", name))
		}
		targets = append(targets, fd)
	}
	log.Debugw("handling request",
		logger.FieldCount, len(targets),
		logger.FieldParameter, req.GetParameter())

	units, err := Generate(ctx, targets, cfg.Options(), cfg.Jobs)
	if err != nil {
		return errorResponse(err)
	}

	resp := &pluginpb.CodeGeneratorResponse{SupportedFeatures: proto.Uint64(supportedFeatures)}
	for _, u := range units {
		resp.File = append(resp.File, &pluginpb.CodeGeneratorResponse_File{
			Name:    proto.String(u.Name),
			Content: proto.String(u.Content),
		})
	}
	return resp
}

func errorResponse(err error) *pluginpb.CodeGeneratorResponse {
	logger.Logger.Errorw("plugin request failed", logger.FieldError, err)
	return &pluginpb.CodeGeneratorResponse{
		Error:             proto.String(err.Error()),
		SupportedFeatures: proto.Uint64(supportedFeatures),
	}
}
