package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	ipcv1 "github.com/KirkDiggler/ipc-metadata/internal/handlers/ipc/v1"
)

var (
	serverAddr     string
	clientContract string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running ipc server",
	// the client talks to a server and needs no local config
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
}

var clientGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a token's labeled metadata over gRPC",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return callServer(cmd, func(ctx context.Context, client *ipcv1.MetadataServiceClient) (*structpb.Struct, error) {
			return client.GetMetadata(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
				ipcv1.FieldTokenID:  structpb.NewStringValue(args[0]),
				ipcv1.FieldContract: structpb.NewStringValue(clientContract),
			}})
		})
	},
}

var clientRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick a random existing token id over gRPC",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return callServer(cmd, func(ctx context.Context, client *ipcv1.MetadataServiceClient) (*structpb.Struct, error) {
			return client.RandomToken(ctx, &structpb.Struct{Fields: map[string]*structpb.Value{
				ipcv1.FieldContract: structpb.NewStringValue(clientContract),
			}})
		})
	},
}

func init() {
	clientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	clientCmd.PersistentFlags().StringVar(&clientContract, "contract", "", "contract version: v0 or v1")

	clientCmd.AddCommand(clientGetCmd)
	clientCmd.AddCommand(clientRandomCmd)
}

func callServer(
	cmd *cobra.Command,
	call func(ctx context.Context, client *ipcv1.MetadataServiceClient) (*structpb.Struct, error),
) error {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	resp, err := call(ctx, ipcv1.NewMetadataServiceClient(conn))
	if err != nil {
		return errors.FromGRPCError(err)
	}

	data, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
