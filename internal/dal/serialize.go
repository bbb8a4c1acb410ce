package dal

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const internalIDField = "_id"

// SerializeDoc returns a copy of doc with the store's internal identifier
// replaced by a plain string "id" field. Documents without an identifier are
// copied as-is; nil or empty documents pass through unchanged.
func SerializeDoc(doc Document) Document {
	if len(doc) == 0 {
		return doc
	}

	res := make(Document, len(doc))
	for k, v := range doc {
		if k == internalIDField {
			res["id"] = stringifyID(v)
			continue
		}
		res[k] = v
	}

	return res
}

// SerializeList applies SerializeDoc to every document, preserving order.
// The result is never nil.
func SerializeList(docs []Document) []Document {
	res := make([]Document, 0, len(docs))
	for _, doc := range docs {
		res = append(res, SerializeDoc(doc))
	}
	return res
}

func stringifyID(v any) string {
	switch id := v.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}
