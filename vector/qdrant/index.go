// Package qdrant backs the vector index with a Qdrant server over gRPC.
package qdrant

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/poiesic/servicefinder/vector"
)

// idPayloadKey carries the service id in the point payload. Qdrant point
// ids must be unsigned ints or RFC-4122 UUIDs, so the human-assigned
// service code cannot be the point id itself.
const idPayloadKey = "serviceId"

// Index implements vector.Index against a Qdrant collection.
type Index struct {
	conn       *grpc.ClientConn
	points     pb.PointsClient
	collection string
}

var _ vector.Index = (*Index)(nil)

// NewIndex connects to Qdrant and binds to the named collection.
func NewIndex(ctx context.Context, host string, port int, collection string) (*Index, error) {
	addr := fmt.Sprintf("%s:%d", host, port)
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("qdrant connect: %w", err)
	}
	return &Index{
		conn:       conn,
		points:     pb.NewPointsClient(conn),
		collection: collection,
	}, nil
}

// pointID derives the deterministic point UUID for a service id, so the
// same service always maps to the same point.
func pointID(id string) *pb.PointId {
	u := uuid.NewSHA1(uuid.NameSpaceOID, []byte(id))
	return &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: u.String()}}
}

// Upsert writes one point, replacing any prior vector and payload.
func (x *Index) Upsert(ctx context.Context, id string, vec []float32, metadata map[string]string) error {
	payload := make(map[string]*pb.Value, len(metadata)+1)
	for k, v := range metadata {
		payload[k] = &pb.Value{Kind: &pb.Value_StringValue{StringValue: v}}
	}
	payload[idPayloadKey] = &pb.Value{Kind: &pb.Value_StringValue{StringValue: id}}

	_, err := x.points.Upsert(ctx, &pb.UpsertPoints{
		CollectionName: x.collection,
		Points: []*pb.PointStruct{{
			Id:      pointID(id),
			Vectors: &pb.Vectors{VectorsOptions: &pb.Vectors_Vector{Vector: &pb.Vector{Data: vec}}},
			Payload: payload,
		}},
	})
	return err
}

// Fetch retrieves points by id, skipping missing ones.
func (x *Index) Fetch(ctx context.Context, ids ...string) ([]vector.Match, error) {
	pointIds := make([]*pb.PointId, len(ids))
	for i, id := range ids {
		pointIds[i] = pointID(id)
	}

	resp, err := x.points.Get(ctx, &pb.GetPoints{
		CollectionName: x.collection,
		Ids:            pointIds,
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, err
	}

	results := make([]vector.Match, 0, len(resp.Result))
	for _, pt := range resp.Result {
		id, meta := splitPayload(pt.Payload)
		results = append(results, vector.Match{
			ID:       id,
			Score:    1,
			Metadata: meta,
		})
	}
	return results, nil
}

// Query runs a similarity search and returns up to topK matches.
func (x *Index) Query(ctx context.Context, vec []float32, topK int) ([]vector.Match, error) {
	resp, err := x.points.Search(ctx, &pb.SearchPoints{
		CollectionName: x.collection,
		Vector:         vec,
		Limit:          uint64(topK),
		WithPayload:    &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}},
	})
	if err != nil {
		return nil, err
	}

	results := make([]vector.Match, len(resp.Result))
	for i, pt := range resp.Result {
		id, meta := splitPayload(pt.Payload)
		results[i] = vector.Match{
			ID:       id,
			Score:    pt.Score,
			Metadata: meta,
		}
	}
	return results, nil
}

// Delete removes a point. Qdrant treats missing ids as a no-op.
func (x *Index) Delete(ctx context.Context, id string) error {
	_, err := x.points.Delete(ctx, &pb.DeletePoints{
		CollectionName: x.collection,
		Points: &pb.PointsSelector{
			PointsSelectorOneOf: &pb.PointsSelector_Points{
				Points: &pb.PointsIdsList{
					Ids: []*pb.PointId{pointID(id)},
				},
			},
		},
	})
	return err
}

// Close closes the gRPC connection.
func (x *Index) Close() error {
	return x.conn.Close()
}

// splitPayload extracts the service id and the remaining metadata from
// a point payload.
func splitPayload(payload map[string]*pb.Value) (string, map[string]string) {
	id := payload[idPayloadKey].GetStringValue()
	if len(payload) <= 1 {
		return id, nil
	}
	meta := make(map[string]string, len(payload)-1)
	for k, v := range payload {
		if k == idPayloadKey {
			continue
		}
		meta[k] = v.GetStringValue()
	}
	return id, meta
}
