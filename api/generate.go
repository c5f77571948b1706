// Package api holds the examprep protobuf contract; api/gen is generated from api/proto.
package api

//go:generate sh -c "cd .. && go run github.com/bufbuild/buf/cmd/buf@v1.47.2 generate"
