package sdk

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
)

var queryEncoder = newQueryEncoder()

func newQueryEncoder() *schema.Encoder {
	enc := schema.NewEncoder()
	enc.SetAliasTag("json")
	wire := func(v reflect.Value) string { return v.Interface().(wireEnum).String() }
	for _, e := range []any{
		SortType(0), CommentSortType(0), ListingType(0), ModlogActionType(0),
		PostFeatureType(0), RegistrationMode(0), SearchType(0), SubscribedType(0),
	} {
		enc.RegisterEncoder(e, wire)
	}
	return enc
}

var errNotRecord = errors.New("form is not a request record")

// EncodeQuery renders a request record as a query string. Keys come out
// sorted, absent optional fields are omitted, and enums use their wire
// literals. A nil form yields "".
//
// Example:
//
//	q, _ := sdk.EncodeQuery(sdk.GetPosts{Page: sdk.Ptr[int32](2), Sort: sdk.Ptr(sdk.SortHot)})
//	// page=2&sort=Hot
func EncodeQuery(form any) (string, error) {
	if form == nil {
		return "", nil
	}
	v := reflect.ValueOf(form)
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: %s", errNotRecord, v.Type())
	}
	if err := checkEnums(v); err != nil {
		return "", err
	}
	values := url.Values{}
	if err := queryEncoder.Encode(v.Interface(), values); err != nil {
		return "", err
	}
	return values.Encode(), nil
}

// checkEnums rejects out-of-range enum values before encoding, since the
// registered encoders have no way to report them.
func checkEnums(v reflect.Value) error {
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if !v.Type().Field(i).IsExported() {
			continue
		}
		for f.Kind() == reflect.Pointer {
			if f.IsNil() {
				break
			}
			f = f.Elem()
		}
		if f.Kind() == reflect.Pointer {
			continue
		}
		if e, ok := f.Interface().(wireEnum); ok {
			if _, err := e.MarshalText(); err != nil {
				return fmt.Errorf("field %s: %w", v.Type().Field(i).Name, err)
			}
			continue
		}
		if f.Kind() == reflect.Struct {
			if err := checkEnums(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildURL composes {base}/api/{version}/{path}?{query} for an endpoint and
// a request record. It never fails: when the record cannot be encoded, the
// query is replaced by the endpoint path and the failure is logged to the
// standard logrus logger. An empty query still leaves the trailing "?".
//
// Example:
//
//	url := sdk.BuildURL(details, sdk.GetOps().CommentList, sdk.GetComments{PostID: sdk.Ptr[int32](7)})
//	// https://lemmy.ml/api/v3/comment/list?post_id=7
func BuildURL(details BaseURLProvider, ep Endpoint, form any) string {
	return buildURL(details, ep, form, logrus.StandardLogger(), nil)
}

func buildURL(details BaseURLProvider, ep Endpoint, form any, logger logrus.FieldLogger, observer Observer) string {
	base, version := details.BaseURLAndVersion()
	base = strings.TrimRight(base, "/")

	query, err := EncodeQuery(form)
	if err != nil {
		serr := &SerializeError{Endpoint: ep, FormType: describeType(form), Err: err}
		logger.WithFields(logrus.Fields{
			"endpoint":  ep.String(),
			"form_type": serr.FormType,
			"error":     err.Error(),
		}).Warn("query serialization failed, falling back to endpoint path")
		if observer != nil {
			observer.OnSerializeFallback(ep, serr)
		}
		query = ep.path
	}
	return base + "/api/" + version + "/" + ep.path + "?" + query
}

func describeType(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
