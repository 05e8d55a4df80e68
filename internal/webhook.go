package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/DrGermanius/advfood/internal/model"
)

var shaddaStatuses = map[int]string{
	10: "New",
	1:  "Accepted",
	2:  "On the way to the pickup location",
	3:  "Reach pickup location",
	4:  "On the way to the delivery location",
	5:  "Arrived to the delivery location",
	6:  "Completed",
	7:  "Canceled",
}

var paymentSuccessStatuses = map[string]bool{
	"success":    true,
	"succeeded":  true,
	"successful": true,
	"paid":       true,
	"completed":  true,
	"captured":   true,
	"approved":   true,
	"authorized": true,
}

var paymentSuccessCodes = map[string]bool{"000": true, "0000": true, "00": true}

type jsonObject map[string]interface{}

func decodePayload(body []byte) (jsonObject, error) {
	d := json.NewDecoder(bytes.NewReader(body))
	d.UseNumber()

	var p jsonObject
	if err := d.Decode(&p); err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("payload is not an object")
	}
	return p, nil
}

// lookup walks a dotted path through nested objects.
func (p jsonObject) lookup(path string) (interface{}, bool) {
	var cur interface{} = map[string]interface{}(p)
	for _, key := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = m[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// str returns the first non-empty scalar found at paths, as a string.
func (p jsonObject) str(paths ...string) string {
	for _, path := range paths {
		v, ok := p.lookup(path)
		if !ok {
			continue
		}
		var s string
		switch t := v.(type) {
		case string:
			s = strings.TrimSpace(t)
		case json.Number:
			s = t.String()
		case float64:
			s = strconv.FormatFloat(t, 'f', -1, 64)
		}
		if s != "" {
			return s
		}
	}
	return ""
}

// strs returns every non-empty scalar found at paths, in order.
func (p jsonObject) strs(paths ...string) []string {
	var out []string
	for _, path := range paths {
		if s := p.str(path); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (p jsonObject) float(paths ...string) *float64 {
	for _, path := range paths {
		s := p.str(path)
		if s == "" {
			continue
		}
		f, err := strconv.ParseFloat(s, 64)
		if err == nil {
			return &f
		}
	}
	return nil
}

// jsonScopes is searched object by object; the first hit wins.
type jsonScopes []jsonObject

// scopes puts the nested object at key, when there is one, ahead of p.
func (p jsonObject) scopes(key string) jsonScopes {
	v, ok := p.lookup(key)
	if !ok {
		return jsonScopes{p}
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return jsonScopes{p}
	}
	return jsonScopes{m, p}
}

func (s jsonScopes) str(paths ...string) string {
	for _, o := range s {
		if v := o.str(paths...); v != "" {
			return v
		}
	}
	return ""
}

func (s jsonScopes) float(paths ...string) *float64 {
	for _, o := range s {
		if v := o.float(paths...); v != nil {
			return v
		}
	}
	return nil
}

func requireStatusUpdate(upd model.StatusUpdate) (model.StatusUpdate, error) {
	if upd.DispatchID == "" {
		return upd, fmt.Errorf("%w: no dispatch id", ErrInvalidWebhookPayload)
	}
	if upd.Status == "" {
		return upd, fmt.Errorf("%w: no status", ErrInvalidWebhookPayload)
	}
	return upd, nil
}

func leajlakStatus(p jsonObject) model.StatusUpdate {
	return model.StatusUpdate{
		DispatchID: p.str("dsp_order_id", "data.dsp_order_id", "order_id", "id"),
		Status:     p.str("status", "data.status"),
		Driver: model.DriverInfo{
			Name:      p.str("driver.name", "driver_name"),
			Phone:     p.str("driver.phone", "driver_phone"),
			Latitude:  p.float("driver.location.latitude", "driver.latitude", "driver_latitude"),
			Longitude: p.float("driver.location.longitude", "driver.longitude", "driver_longitude"),
		},
	}
}

// ParseLeajlakWebhook reads the provider's own callback shape.
func ParseLeajlakWebhook(body []byte) (model.StatusUpdate, error) {
	p, err := decodePayload(body)
	if err != nil {
		return model.StatusUpdate{}, fmt.Errorf("%w: %s", ErrInvalidWebhookPayload, err.Error())
	}
	return requireStatusUpdate(leajlakStatus(p))
}

// ShaddaStatusText maps Shadda's numeric codes. Non-numeric values pass through.
func ShaddaStatusText(raw string) string {
	if raw == "" {
		return ""
	}
	code, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	if s, ok := shaddaStatuses[code]; ok {
		return s
	}
	return "Unknown"
}

func shaddaStatus(p jsonObject) model.StatusUpdate {
	data := p.scopes("data")

	status := data.str("statusDesc")
	if status == "" {
		status = ShaddaStatusText(data.str("status", "statusCode", "statusId"))
	}

	return model.StatusUpdate{
		DispatchID: data.str("orderId", "order_id", "id"),
		Status:     status,
		Driver: model.DriverInfo{
			Name:      data.str("driver.name", "driverName"),
			Phone:     data.str("driver.phone", "driverPhone", "driverMobile", "mobile"),
			Latitude:  data.float("driver.latitude", "driverLatitude", "location.latitude", "lat"),
			Longitude: data.float("driver.longitude", "driverLongitude", "location.longitude", "lng", "lon"),
		},
	}
}

// ParseShaddaWebhook reads Shadda callbacks. Keys inside "data" win over top level ones.
func ParseShaddaWebhook(body []byte) (model.StatusUpdate, error) {
	p, err := decodePayload(body)
	if err != nil {
		return model.StatusUpdate{}, fmt.Errorf("%w: %s", ErrInvalidWebhookPayload, err.Error())
	}
	return requireStatusUpdate(shaddaStatus(p))
}

// ParseGenericWebhook accepts any source that sends a dispatch id and a status under common names.
func ParseGenericWebhook(body []byte) (model.StatusUpdate, error) {
	p, err := decodePayload(body)
	if err != nil {
		return model.StatusUpdate{}, fmt.Errorf("%w: %s", ErrInvalidWebhookPayload, err.Error())
	}
	data := p.scopes("data")

	upd := model.StatusUpdate{
		DispatchID: data.str("dispatch_id", "dsp_order_id", "dispatchId", "order_id", "orderId", "id"),
		Status:     data.str("shipping_status", "status", "statusDesc"),
		Driver: model.DriverInfo{
			Name:      data.str("driver.name", "driver_name", "driverName"),
			Phone:     data.str("driver.phone", "driver_phone", "driverPhone"),
			Latitude:  data.float("driver.latitude", "driver_latitude", "driverLatitude"),
			Longitude: data.float("driver.longitude", "driver_longitude", "driverLongitude"),
		},
	}
	return requireStatusUpdate(upd)
}

func ParseWebhook(source string, body []byte) (model.StatusUpdate, error) {
	switch source {
	case model.WebhookSourceProvider:
		return ParseLeajlakWebhook(body)
	case model.WebhookSourceShadda:
		return ParseShaddaWebhook(body)
	default:
		return ParseGenericWebhook(body)
	}
}

// ParsePaymentNotification extracts the order reference and outcome of a payment gateway callback.
func ParsePaymentNotification(body []byte) (model.PaymentNotification, error) {
	p, err := decodePayload(body)
	if err != nil {
		return model.PaymentNotification{}, fmt.Errorf("%w: %s", ErrInvalidWebhookPayload, err.Error())
	}

	statuses := p.strs(
		"event", "eventType", "event.type", "status", "paymentStatus", "orderStatus",
		"transactionStatus", "order.status", "result.status", "result.order.status",
	)
	for i := range statuses {
		statuses[i] = strings.ToLower(statuses[i])
	}

	return model.PaymentNotification{
		Reference: p.str(
			"orderReference", "order.reference", "order.id", "merchantOrderReference",
			"orderId", "id", "result.order.id", "result.order.reference",
		),
		Statuses:   statuses,
		ResultCode: p.str("resultCode", "responseCode", "result.resultCode"),
	}, nil
}

// PaymentSucceeded is true when any status candidate or the result code reports success.
func PaymentSucceeded(n model.PaymentNotification) bool {
	for _, s := range n.Statuses {
		if paymentSuccessStatuses[s] {
			return true
		}
	}
	return paymentSuccessCodes[n.ResultCode]
}
