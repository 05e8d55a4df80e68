package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v4/stdlib"
	"go.uber.org/zap"

	"github.com/DrGermanius/advfood/internal/model"
)

// orderNumberLockKey serializes order number allocation across concurrent checkouts.
const orderNumberLockKey = 72010

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var orderColumns = []string{
	"o.id", "o.order_number", "o.restaurant_id", "o.branch_id", "o.status",
	"o.payment_status", "o.payment_method", "o.payment_reference", "o.source",
	"o.dispatch_state", "o.shop_id", "o.dispatch_id", "o.shipping_status",
	"o.delivery_name", "o.delivery_phone", "o.delivery_address",
	"o.customer_latitude", "o.customer_longitude", "o.special_instructions",
	"o.subtotal", "o.delivery_fee", "o.tax", "o.total",
	"o.driver_name", "o.driver_phone", "o.driver_latitude", "o.driver_longitude",
	"o.created_at", "o.updated_at",
	"r.name", "r.shop_id",
}

type IRepository interface {
	CreateOrder(context.Context, model.Order) (model.Order, error)
	GetOrderByID(context.Context, int64) (model.Order, error)
	GetOrderByReference(context.Context, string) (model.Order, error)
	GetOrderByDispatchID(context.Context, string) (model.Order, error)
	GetOrderIDsByState(context.Context, model.DispatchState) ([]int64, error)
	MarkOrderPaid(context.Context, int64, string) (bool, error)
	SetOrderShopID(context.Context, int64, string) error
	SaveDispatch(context.Context, model.ShippingOrder) error
	UpdateShippingStatus(context.Context, model.StatusUpdate) (bool, error)

	GetBranchShopID(context.Context, int64, int64) (string, error)
	GetActiveBranches(context.Context) ([]model.Branch, error)
	CheckBranchCredentials(context.Context, string, string) (int64, error)

	CountDispatchStates(context.Context, model.OrderSubset) (model.SubsetReport, error)
	GetRecentOrders(context.Context, model.OrderSubset, int) ([]model.Order, error)
	GetOrderSources(context.Context) ([]string, error)

	SaveWebhookEvent(context.Context, model.WebhookEvent) error
	GetWebhookEvents(context.Context, int) ([]model.WebhookEvent, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, err
	}

	if err = Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	logger.Info("database migrations applied")

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) Close() error {
	return r.Conn.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (model.Order, error) {
	var (
		o                    model.Order
		branchID             sql.NullInt64
		shopID, dispatchID   sql.NullString
		restaurantShopID     sql.NullString
		latitude, longitude  sql.NullFloat64
		driverLat, driverLng sql.NullFloat64
		dispatchState        string
	)

	err := row.Scan(
		&o.ID, &o.Number, &o.RestaurantID, &branchID, &o.Status,
		&o.PaymentStatus, &o.PaymentMethod, &o.PaymentReference, &o.Source,
		&dispatchState, &shopID, &dispatchID, &o.ShippingStatus,
		&o.DeliveryName, &o.DeliveryPhone, &o.DeliveryAddress,
		&latitude, &longitude, &o.SpecialInstructions,
		&o.Subtotal, &o.DeliveryFee, &o.Tax, &o.Total,
		&o.DriverName, &o.DriverPhone, &driverLat, &driverLng,
		&o.CreatedAt, &o.UpdatedAt,
		&o.Restaurant.Name, &restaurantShopID,
	)
	if err != nil {
		return model.Order{}, err
	}

	o.DispatchState = model.DispatchState(dispatchState)
	if branchID.Valid {
		o.BranchID = &branchID.Int64
	}
	if latitude.Valid {
		o.Latitude = &latitude.Float64
	}
	if longitude.Valid {
		o.Longitude = &longitude.Float64
	}
	if driverLat.Valid && driverLng.Valid {
		o.DriverLatitude = &driverLat.Float64
		o.DriverLongitude = &driverLng.Float64
	}
	o.ShopID = shopID.String
	o.DispatchID = dispatchID.String
	o.Restaurant.ID = o.RestaurantID
	o.Restaurant.ShopID = restaurantShopID.String

	return o, nil
}

func selectOrders() sq.SelectBuilder {
	return psql.Select(orderColumns...).
		From("orders o").
		Join("restaurants r ON r.id = o.restaurant_id")
}

func (r Repository) getOrder(ctx context.Context, where sq.Sqlizer) (model.Order, error) {
	query, args, err := selectOrders().Where(where).Limit(1).ToSql()
	if err != nil {
		return model.Order{}, err
	}

	o, err := scanOrder(r.Conn.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r Repository) CreateOrder(ctx context.Context, o model.Order) (model.Order, error) {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return model.Order{}, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", orderNumberLockKey)
	if err != nil {
		return model.Order{}, err
	}

	now := time.Now()
	query, args, err := psql.Select("order_number").
		From("orders").
		Where(sq.Like{"order_number": model.OrderNumberDayPrefix(now) + "%"}).
		OrderBy("LENGTH(order_number) DESC", "order_number DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return model.Order{}, err
	}

	var last string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, err
	}
	o.Number = model.NextOrderNumber(last, now)

	query, args, err = psql.Insert("orders").
		Columns(
			"order_number", "restaurant_id", "branch_id", "status",
			"payment_status", "payment_method", "source", "dispatch_state",
			"delivery_name", "delivery_phone", "delivery_address",
			"customer_latitude", "customer_longitude", "special_instructions",
			"subtotal", "delivery_fee", "tax", "total",
		).
		Values(
			o.Number, o.RestaurantID, o.BranchID, o.Status,
			o.PaymentStatus, o.PaymentMethod, o.Source, string(o.DispatchState),
			o.DeliveryName, o.DeliveryPhone, o.DeliveryAddress,
			o.Latitude, o.Longitude, o.SpecialInstructions,
			o.Subtotal, o.DeliveryFee, o.Tax, o.Total,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return model.Order{}, err
	}

	err = tx.QueryRowContext(ctx, query, args...).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return model.Order{}, fmt.Errorf("insert order: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r Repository) GetOrderByID(ctx context.Context, id int64) (model.Order, error) {
	return r.getOrder(ctx, sq.Eq{"o.id": id})
}

// GetOrderByReference matches a payment reference or an order number.
func (r Repository) GetOrderByReference(ctx context.Context, reference string) (model.Order, error) {
	return r.getOrder(ctx, sq.Or{
		sq.Eq{"o.payment_reference": reference},
		sq.Eq{"o.order_number": reference},
	})
}

func (r Repository) GetOrderByDispatchID(ctx context.Context, dispatchID string) (model.Order, error) {
	return r.getOrder(ctx, sq.Eq{"o.dispatch_id": dispatchID})
}

func (r Repository) GetOrderIDsByState(ctx context.Context, state model.DispatchState) ([]int64, error) {
	query, args, err := psql.Select("id").
		From("orders").
		Where(sq.Eq{"dispatch_state": string(state)}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// MarkOrderPaid moves an unpaid order to ELIGIBLE_UNSENT. It reports false when the
// order was not in NOT_ELIGIBLE, so repeated payment callbacks are no-ops.
func (r Repository) MarkOrderPaid(ctx context.Context, id int64, reference string) (bool, error) {
	b := psql.Update("orders").
		Set("payment_status", model.PaymentStatusPaid).
		Set("dispatch_state", string(model.DispatchEligibleUnsent)).
		Set("status", model.OrderStatusConfirmed).
		Set("updated_at", time.Now())
	if reference != "" {
		b = b.Set("payment_reference", reference)
	}

	query, args, err := b.Where(sq.Eq{"id": id, "dispatch_state": string(model.DispatchNotEligible)}).ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.Conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r Repository) SetOrderShopID(ctx context.Context, id int64, shopID string) error {
	query, args, err := psql.Update("orders").
		Set("shop_id", shopID).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.Conn.ExecContext(ctx, query, args...)
	return err
}

// SaveDispatch marks the order SENT and writes the shipping audit record in one transaction.
func (r Repository) SaveDispatch(ctx context.Context, rec model.ShippingOrder) error {
	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	query, args, err := psql.Update("orders").
		Set("dispatch_id", rec.DispatchID).
		Set("dispatch_state", string(model.DispatchSent)).
		Set("shipping_status", rec.ShippingStatus).
		Set("shop_id", rec.ShopID).
		Set("updated_at", now).
		Where(sq.Eq{"id": rec.OrderID, "dispatch_state": string(model.DispatchEligibleUnsent)}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderIsAlreadySent
	}

	query, args, err = psql.Insert("shipping_orders").
		Columns(
			"order_id", "provider", "shop_id", "dsp_order_id", "shipping_status",
			"recipient_name", "recipient_phone", "recipient_address",
			"latitude", "longitude", "total", "payment_type", "notes",
			"created_at", "updated_at",
		).
		Values(
			rec.OrderID, rec.Provider, rec.ShopID, rec.DispatchID, rec.ShippingStatus,
			rec.RecipientName, rec.RecipientPhone, rec.Address,
			rec.Latitude, rec.Longitude, rec.Total, rec.PaymentType, rec.Notes,
			now, now,
		).
		ToSql()
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert shipping order: %w", err)
	}

	return tx.Commit()
}

// UpdateShippingStatus overwrites the status of the order holding the dispatch id.
// It reports false, changing nothing, when no order holds it.
func (r Repository) UpdateShippingStatus(ctx context.Context, upd model.StatusUpdate) (bool, error) {
	now := time.Now()
	orderSet := map[string]interface{}{"shipping_status": upd.Status, "updated_at": now}
	shippingSet := map[string]interface{}{"shipping_status": upd.Status, "updated_at": now}
	if upd.Driver.Name != "" {
		orderSet["driver_name"] = upd.Driver.Name
		shippingSet["driver_name"] = upd.Driver.Name
	}
	if upd.Driver.Phone != "" {
		orderSet["driver_phone"] = upd.Driver.Phone
		shippingSet["driver_phone"] = upd.Driver.Phone
	}
	if upd.Driver.Latitude != nil && upd.Driver.Longitude != nil {
		orderSet["driver_latitude"] = *upd.Driver.Latitude
		orderSet["driver_longitude"] = *upd.Driver.Longitude
		shippingSet["driver_latitude"] = *upd.Driver.Latitude
		shippingSet["driver_longitude"] = *upd.Driver.Longitude
	}

	tx, err := r.Conn.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	query, args, err := psql.Update("orders").SetMap(orderSet).Where(sq.Eq{"dispatch_id": upd.DispatchID}).ToSql()
	if err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	query, args, err = psql.Update("shipping_orders").SetMap(shippingSet).Where(sq.Eq{"dsp_order_id": upd.DispatchID}).ToSql()
	if err != nil {
		return false, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// GetBranchShopID returns "" when the pair has no mapping.
func (r Repository) GetBranchShopID(ctx context.Context, branchID, restaurantID int64) (string, error) {
	query, args, err := psql.Select("shop_id").
		From("branch_restaurant_shop_ids").
		Where(sq.Eq{"branch_id": branchID, "restaurant_id": restaurantID}).
		ToSql()
	if err != nil {
		return "", err
	}

	var shopID string
	err = r.Conn.QueryRowContext(ctx, query, args...).Scan(&shopID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return shopID, nil
}

func (r Repository) GetActiveBranches(ctx context.Context) ([]model.Branch, error) {
	query, args, err := psql.Select("id", "name", "email", "status", "latitude", "longitude").
		From("branches").
		Where(sq.Eq{"status": model.BranchStatusActive}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []model.Branch
	for rows.Next() {
		var b model.Branch
		if err = rows.Scan(&b.ID, &b.Name, &b.Email, &b.Status, &b.Latitude, &b.Longitude); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}

func (r Repository) CheckBranchCredentials(ctx context.Context, email, password string) (int64, error) {
	query, args, err := psql.Select("id").
		From("branches").
		Where(sq.Eq{"email": email, "password": password, "status": model.BranchStatusActive}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	err = r.Conn.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func applySubset(b sq.SelectBuilder, subset model.OrderSubset) sq.SelectBuilder {
	if subset.PaidOnly {
		b = b.Where(sq.Eq{"o.payment_status": model.PaymentStatusPaid})
	}
	if subset.Source != "" {
		b = b.Where(sq.Eq{"o.source": subset.Source})
	}
	return b
}

func (r Repository) CountDispatchStates(ctx context.Context, subset model.OrderSubset) (model.SubsetReport, error) {
	b := psql.Select(
		"COUNT(*) FILTER (WHERE o.dispatch_id IS NOT NULL)",
		"COUNT(*) FILTER (WHERE o.dispatch_id IS NULL)",
	).From("orders o")

	query, args, err := applySubset(b, subset).ToSql()
	if err != nil {
		return model.SubsetReport{}, err
	}

	report := model.SubsetReport{Subset: subset}
	err = r.Conn.QueryRowContext(ctx, query, args...).Scan(&report.Dispatched, &report.NotDispatched)
	if err != nil {
		return model.SubsetReport{}, err
	}
	return report, nil
}

func (r Repository) GetRecentOrders(ctx context.Context, subset model.OrderSubset, limit int) ([]model.Order, error) {
	query, args, err := applySubset(selectOrders(), subset).
		OrderBy("o.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r Repository) GetOrderSources(ctx context.Context) ([]string, error) {
	query, args, err := psql.Select("DISTINCT source").
		From("orders").
		Where(sq.NotEq{"source": ""}).
		OrderBy("source").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var s string
		if err = rows.Scan(&s); err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}

	return sources, rows.Err()
}

func (r Repository) SaveWebhookEvent(ctx context.Context, e model.WebhookEvent) error {
	query, args, err := psql.Insert("webhook_events").
		Columns("id", "source", "dispatch_id", "status", "matched", "payload", "received_at").
		Values(e.ID, e.Source, e.DispatchID, e.Status, e.Matched, e.Payload, e.ReceivedAt).
		ToSql()
	if err != nil {
		return err
	}

	_, err = r.Conn.ExecContext(ctx, query, args...)
	return err
}

func (r Repository) GetWebhookEvents(ctx context.Context, limit int) ([]model.WebhookEvent, error) {
	query, args, err := psql.Select("id", "source", "dispatch_id", "status", "matched", "payload", "received_at").
		From("webhook_events").
		OrderBy("received_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.Conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.WebhookEvent
	for rows.Next() {
		var e model.WebhookEvent
		if err = rows.Scan(&e.ID, &e.Source, &e.DispatchID, &e.Status, &e.Matched, &e.Payload, &e.ReceivedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
