// Package operations is the long-running operation store behind the
// google.longrunning.Operations surface. Background tasks never return
// errors to their callers; they land on Finish or Fail and the store is the
// observable result.
package operations

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	statuspb "google.golang.org/genproto/googleapis/rpc/status"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"

	"github.com/macosusesdk/automationd/internal/apierr"
)

const pollInterval = 100 * time.Millisecond

// Store maps operation name -> Operation. All transitions happen under the
// store lock; once done=true the result never changes.
type Store struct {
	mu     sync.RWMutex
	logger *log.Logger
	ops    map[string]*longrunningpb.Operation
}

// NewStore returns an empty operation store.
func NewStore() *Store {
	return &Store{
		logger: log.New(log.Writer(), "[LRO] ", log.LstdFlags),
		ops:    make(map[string]*longrunningpb.Operation),
	}
}

// Create registers a pending operation. Metadata may be nil.
func (s *Store) Create(name string, metadata proto.Message) (*longrunningpb.Operation, error) {
	op := &longrunningpb.Operation{Name: name}
	if metadata != nil {
		md, err := anypb.New(metadata)
		if err != nil {
			return nil, apierr.Internal(apierr.ReasonSerializationError,
				fmt.Sprintf("packing operation metadata: %v", err), nil)
		}
		op.Metadata = md
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[name] = op
	return proto.Clone(op).(*longrunningpb.Operation), nil
}

// Put stores an operation verbatim, replacing any previous record.
func (s *Store) Put(op *longrunningpb.Operation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops[op.GetName()] = proto.Clone(op).(*longrunningpb.Operation)
}

// Get returns a snapshot of the named operation.
func (s *Store) Get(name string) (*longrunningpb.Operation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	op, ok := s.ops[name]
	if !ok {
		return nil, apierr.NotFound(apierr.ReasonOperationNotFound, name)
	}
	return proto.Clone(op).(*longrunningpb.Operation), nil
}

// Finish marks the operation done with a response payload. A nil response
// completes the operation with no payload; done=true is the contract either
// way. Completing an already-done operation is a no-op beyond a log line;
// the first result wins.
func (s *Store) Finish(name string, response proto.Message) error {
	var payload *anypb.Any
	if response != nil {
		var err error
		payload, err = anypb.New(response)
		if err != nil {
			return apierr.Internal(apierr.ReasonSerializationError,
				fmt.Sprintf("packing operation response: %v", err), nil)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.ops[name]
	if !ok {
		return apierr.NotFound(apierr.ReasonOperationNotFound, name)
	}
	if op.GetDone() {
		s.logger.Printf("ignoring duplicate completion of %s", name)
		return nil
	}
	op.Done = true
	if payload != nil {
		op.Result = &longrunningpb.Operation_Response{Response: payload}
	}
	return nil
}

// Fail marks the operation done with an error status.
func (s *Store) Fail(name string, st *statuspb.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.ops[name]
	if !ok {
		return apierr.NotFound(apierr.ReasonOperationNotFound, name)
	}
	if op.GetDone() {
		s.logger.Printf("ignoring duplicate failure of %s", name)
		return nil
	}
	op.Done = true
	op.Result = &longrunningpb.Operation_Error{Error: st}
	return nil
}

// Cancel marks a pending operation cancelled. Cancelling a done operation is
// a no-op.
func (s *Store) Cancel(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	op, ok := s.ops[name]
	if !ok {
		return apierr.NotFound(apierr.ReasonOperationNotFound, name)
	}
	if op.GetDone() {
		return nil
	}
	op.Done = true
	op.Result = &longrunningpb.Operation_Error{Error: &statuspb.Status{
		Code:    int32(codes.Canceled),
		Message: "operation cancelled",
	}}
	return nil
}

// Delete removes the operation record.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ops[name]; !ok {
		return apierr.NotFound(apierr.ReasonOperationNotFound, name)
	}
	delete(s.ops, name)
	return nil
}

// Wait polls until the operation is done, the timeout elapses, or ctx is
// cancelled. It returns the current snapshot in every case; a timeout is not
// an error.
func (s *Store) Wait(ctx context.Context, name string, timeout time.Duration) (*longrunningpb.Operation, error) {
	deadline := time.Now().Add(timeout)
	for {
		op, err := s.Get(name)
		if err != nil {
			return nil, err
		}
		if op.GetDone() || timeout <= 0 || !time.Now().Before(deadline) {
			return op, nil
		}
		select {
		case <-ctx.Done():
			return op, nil
		case <-time.After(pollInterval):
		}
	}
}

// List returns a name-sorted page of operations, optionally restricted to a
// name prefix and, when done is non-nil, to operations matching that done
// state. The page token is this store's own offset codec, kept independent of
// the shared pagination package so token formats can drift without
// cross-coupling.
func (s *Store) List(namePrefix string, done *bool, pageSize int32, pageToken string) ([]*longrunningpb.Operation, string, error) {
	s.mu.RLock()
	var all []*longrunningpb.Operation
	for name, op := range s.ops {
		if namePrefix != "" && !strings.HasPrefix(name, namePrefix) {
			continue
		}
		if done != nil && op.GetDone() != *done {
			continue
		}
		all = append(all, proto.Clone(op).(*longrunningpb.Operation))
	}
	s.mu.RUnlock()
	sort.Slice(all, func(i, j int) bool { return all[i].GetName() < all[j].GetName() })

	offset := 0
	if pageToken != "" {
		var err error
		offset, err = decodeToken(pageToken)
		if err != nil {
			return nil, "", err
		}
	}
	size := int(pageSize)
	if size <= 0 {
		size = 100
	}
	if offset >= len(all) {
		return nil, "", nil
	}
	end := offset + size
	next := ""
	if end < len(all) {
		next = encodeToken(end)
	} else {
		end = len(all)
	}
	return all[offset:end], next, nil
}

func encodeToken(offset int) string {
	return base64.StdEncoding.EncodeToString([]byte("offset:" + strconv.Itoa(offset)))
}

func decodeToken(token string) (int, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err == nil {
		if rest, ok := strings.CutPrefix(string(raw), "offset:"); ok {
			if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
				return n, nil
			}
		}
	}
	return 0, apierr.InvalidArgument(apierr.ReasonInvalidPageToken,
		"malformed page token", map[string]string{"pageToken": token})
}
