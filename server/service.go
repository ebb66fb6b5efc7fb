package server

import (
	"context"
	"fmt"

	"connectrpc.com/connect"

	objectwirev1 "github.com/chazu/objectwire/gen/objectwire/v1"
	"github.com/chazu/objectwire/gen/objectwire/v1/objectwirev1connect"

	"github.com/chazu/objectwire/bridge"
)

// BridgeService implements the Connect/gRPC BridgeService handler: every
// RPC looks up (or creates) a BridgeSession, submits work to its
// BridgeWorker, and translates handle IDs at the boundary.
type BridgeService struct {
	objectwirev1connect.UnimplementedBridgeServiceHandler
	sessions *SessionStore
}

// NewBridgeService creates a BridgeService over the given SessionStore.
func NewBridgeService(sessions *SessionStore) *BridgeService {
	return &BridgeService{sessions: sessions}
}

func (s *BridgeService) NewSession(
	ctx context.Context,
	req *connect.Request[objectwirev1.NewSessionRequest],
) (*connect.Response[objectwirev1.NewSessionResponse], error) {
	session, err := s.sessions.Create(bridge.Options{
		InterpreterPath: req.Msg.InterpreterPath,
		InterpreterArgs: req.Msg.InterpreterArgs,
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("launching interpreter: %w", err))
	}
	return connect.NewResponse(&objectwirev1.NewSessionResponse{SessionId: session.ID}), nil
}

func (s *BridgeService) CloseSession(
	ctx context.Context,
	req *connect.Request[objectwirev1.CloseSessionRequest],
) (*connect.Response[objectwirev1.CloseSessionResponse], error) {
	s.sessions.Destroy(req.Msg.SessionId)
	return connect.NewResponse(&objectwirev1.CloseSessionResponse{}), nil
}

func (s *BridgeService) Global(
	ctx context.Context,
	req *connect.Request[objectwirev1.GlobalRequest],
) (*connect.Response[objectwirev1.HandleResponse], error) {
	session, err := s.session(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	result, err := session.Worker.Do(func(b *bridge.Bridge) (any, error) {
		return b.Global(req.Msg.QualifiedName)
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	id := session.Handles.Create(result.(*bridge.Object))
	return connect.NewResponse(&objectwirev1.HandleResponse{Handle: id}), nil
}

func (s *BridgeService) Call(
	ctx context.Context,
	req *connect.Request[objectwirev1.CallRequest],
) (*connect.Response[objectwirev1.HandleResponse], error) {
	session, err := s.session(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	fn, ok := session.Handles.Lookup(req.Msg.FnHandle)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("handle %q not found", req.Msg.FnHandle))
	}

	args := make([]*bridge.Object, len(req.Msg.ArgHandles))
	for i, h := range req.Msg.ArgHandles {
		obj, ok := session.Handles.Lookup(h)
		if !ok {
			return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("handle %q not found", h))
		}
		args[i] = obj
	}

	result, err := session.Worker.Do(func(b *bridge.Bridge) (any, error) {
		return b.Call(fn, args...)
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	id := session.Handles.Create(result.(*bridge.Object))
	return connect.NewResponse(&objectwirev1.HandleResponse{Handle: id}), nil
}

func (s *BridgeService) GetInt(
	ctx context.Context,
	req *connect.Request[objectwirev1.GetIntRequest],
) (*connect.Response[objectwirev1.GetIntResponse], error) {
	session, err := s.session(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	obj, ok := session.Handles.Lookup(req.Msg.Handle)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("handle %q not found", req.Msg.Handle))
	}

	result, err := session.Worker.Do(func(b *bridge.Bridge) (any, error) {
		return b.GetInt(obj)
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&objectwirev1.GetIntResponse{Value: result.(int64)}), nil
}

func (s *BridgeService) GetBytes(
	ctx context.Context,
	req *connect.Request[objectwirev1.GetBytesRequest],
) (*connect.Response[objectwirev1.GetBytesResponse], error) {
	session, err := s.session(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}

	obj, ok := session.Handles.Lookup(req.Msg.Handle)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("handle %q not found", req.Msg.Handle))
	}

	result, err := session.Worker.Do(func(b *bridge.Bridge) (any, error) {
		return b.GetBytes(obj)
	})
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&objectwirev1.GetBytesResponse{Value: result.([]byte)}), nil
}

func (s *BridgeService) Drop(
	ctx context.Context,
	req *connect.Request[objectwirev1.DropRequest],
) (*connect.Response[objectwirev1.DropResponse], error) {
	session, err := s.session(req.Msg.SessionId)
	if err != nil {
		return nil, err
	}
	session.Drop(req.Msg.Handle)
	return connect.NewResponse(&objectwirev1.DropResponse{}), nil
}

func (s *BridgeService) session(id string) (*BridgeSession, error) {
	session, ok := s.sessions.Get(id)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("session %q not found", id))
	}
	return session, nil
}
