package repository

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CouponSearch holds the resolved optional filters for the public coupon
// listing. Slugs are resolved to ids by the caller before building the
// filter; an unresolved slug simply leaves the field nil.
type CouponSearch struct {
	CategoryID *primitive.ObjectID
	StoreID    *primitive.ObjectID
	Query      string
	Type       string // "exclusive", "verified" or "featured"
}

// BuildCouponFilter translates search parameters into a mongo filter. Public
// listings always restrict to active coupons.
func BuildCouponFilter(p CouponSearch) bson.M {
	filter := bson.M{"isActive": true}

	if p.CategoryID != nil {
		filter["category"] = *p.CategoryID
	}
	if p.StoreID != nil {
		filter["store"] = *p.StoreID
	}
	if p.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(p.Query), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"description": pattern},
		}
	}
	switch p.Type {
	case "exclusive":
		filter["isExclusive"] = true
	case "verified":
		filter["isVerified"] = true
	case "featured":
		filter["isFeatured"] = true
	}

	return filter
}

// SortByRecency orders newest first; store detail pages use
// SortFeaturedFirst to float promoted coupons above the recency order.
func SortByRecency() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}

func SortFeaturedFirst() bson.D {
	return bson.D{{Key: "isFeatured", Value: -1}, {Key: "createdAt", Value: -1}}
}
