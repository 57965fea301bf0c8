package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/retailatlas/store-locator/api/internal/query"
)

// renderPlan translates an engine-agnostic query plan into a Mongo filter
// document. Pattern values are quoted before becoming regexes: the DSL
// carries plain strings, never wildcards.
func renderPlan(plan query.Plan) bson.M {
	clauses := make([]bson.M, 0)
	for _, cond := range plan.Conditions {
		for _, clause := range cond.Clauses {
			clauses = append(clauses, bson.M{cond.Field: renderClause(clause)})
		}
	}
	if plan.ExcludeClosed {
		clauses = append(clauses, bson.M{"closed": bson.M{"$ne": true}})
	}

	filter := bson.M{}
	switch len(clauses) {
	case 0:
	case 1:
		filter = clauses[0]
	default:
		filter = bson.M{"$and": clauses}
	}

	// $near is only valid at the top level of a query document, never
	// inside $and.
	if plan.Near != nil {
		filter["location"] = bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{plan.Near.Center.Longitude, plan.Near.Center.Latitude},
				},
				"$maxDistance": plan.Near.MaxDistanceMeters,
			},
		}
	}

	return filter
}

// renderClause maps one string clause onto its Mongo operator form.
func renderClause(clause query.StringClause) any {
	quoted := regexp.QuoteMeta(clause.Value)
	switch clause.Op {
	case query.OpContains:
		return primitive.Regex{Pattern: quoted}
	case query.OpNotContains:
		return bson.M{"$not": primitive.Regex{Pattern: quoted}}
	case query.OpStartsWith:
		return primitive.Regex{Pattern: "^" + quoted}
	case query.OpNotStartsWith:
		return bson.M{"$not": primitive.Regex{Pattern: "^" + quoted}}
	case query.OpEndsWith:
		return primitive.Regex{Pattern: quoted + "$"}
	default:
		return clause.Value
	}
}
