package service

import (
	"context"
	"sort"

	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/macosusesdk/automationd/internal/apierr"
	"github.com/macosusesdk/automationd/internal/elements"
	"github.com/macosusesdk/automationd/internal/fieldmask"
	"github.com/macosusesdk/automationd/internal/macros"
	"github.com/macosusesdk/automationd/internal/names"
	"github.com/macosusesdk/automationd/internal/pagination"
	"github.com/macosusesdk/automationd/internal/validate"
	"github.com/macosusesdk/automationd/pb"
)

const defaultQueryResults = 50

func (s *Service) GetElement(ctx context.Context, req *pb.GetElementRequest) (*pb.Element, error) {
	pid, id, err := names.ParseElement(req.Name)
	if err != nil {
		return nil, err
	}
	entry, ok := s.elements.Get(id)
	if !ok || entry.Pid != pid {
		return nil, apierr.NotFound(apierr.ReasonElementNotFound, req.Name)
	}
	return maskElement(entryToPB(entry), req.ReadMask), nil
}

func (s *Service) ListElements(ctx context.Context, req *pb.ListElementsRequest) (*pb.ListElementsResponse, error) {
	pid, err := names.ParseApplicationOrWildcard(req.Parent)
	if err != nil {
		return nil, err
	}
	entries := s.elements.ListByPid(pid)
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	page, next, err := pagination.Page(entries, req.PageSize, req.PageToken, pagination.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	out := make([]*pb.Element, len(page))
	for i, e := range page {
		out[i] = entryToPB(e)
	}
	return &pb.ListElementsResponse{Elements: out, NextPageToken: next}, nil
}

// QueryElements resolves a selector against the live accessibility tree and
// registers every match, handing back addressable element resources.
func (s *Service) QueryElements(ctx context.Context, req *pb.QueryElementsRequest) (*pb.QueryElementsResponse, error) {
	pid, err := names.ParseApplication(req.Parent)
	if err != nil {
		return nil, err
	}
	if err := validate.RequiredString("selector", req.Selector); err != nil {
		return nil, err
	}
	sel, err := macros.ParseSelector(req.Selector)
	if err != nil {
		return nil, err
	}
	max := int(req.MaxResults)
	if max <= 0 {
		max = defaultQueryResults
	}
	found, err := s.sys.FindElements(ctx, pid, sel.Role, sel.Text, sel.TextContains, sel.RegexSource(), max)
	if err != nil {
		return nil, apierr.Platform(err)
	}
	out := make([]*pb.Element, 0, len(found))
	for _, el := range found {
		id := s.elements.Register(el)
		if entry, ok := s.elements.Get(id); ok {
			out = append(out, entryToPB(entry))
		}
	}
	return &pb.QueryElementsResponse{Elements: out}, nil
}

func entryToPB(e *elements.Entry) *pb.Element {
	el := e.Element
	out := &pb.Element{
		Name:       names.Element(e.Pid, e.ID),
		Role:       el.Role,
		Title:      el.Title,
		Value:      el.Value,
		Attributes: el.Attributes,
		CreateTime: timestamppb.New(e.Registered),
	}
	if el.Bounds != nil {
		out.Bounds = rectToBounds(*el.Bounds)
	}
	return out
}

func maskElement(el *pb.Element, mask *fieldmaskpb.FieldMask) *pb.Element {
	if fieldmask.ReadAll(mask) {
		return el
	}
	keep := fieldmask.NewKeep(mask, "name")
	out := &pb.Element{Name: el.Name}
	if keep.Has("role") {
		out.Role = el.Role
	}
	if keep.Has("title") {
		out.Title = el.Title
	}
	if keep.Has("value") {
		out.Value = el.Value
	}
	if keep.Has("bounds") {
		out.Bounds = el.Bounds
	}
	if keep.Has("attributes") {
		out.Attributes = el.Attributes
	}
	if keep.Has("create_time") {
		out.CreateTime = el.CreateTime
	}
	return out
}
