package repository

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	_ "github.com/stoolap/stoolap/pkg/driver"

	"lavka/internal/domain"
)

// Open открывает (или создаёт) файл базы данных по указанному пути
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("stoolap", "file://"+path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return db, nil
}

// SQLStore хранилище поверх встроенной SQL-базы (stoolap)
type SQLStore struct {
	db *sql.DB
}

// Ensure interfaces
var (
	_ CustomerRepository = (*SQLStore)(nil)
	_ ProductRepository  = (*SQLStore)(nil)
	_ OrderRepository    = (*SQLStore)(nil)
	_ CSVPorter          = (*SQLStore)(nil)
)

// NewSQLStore создаёт таблицы (идемпотентно) и возвращает хранилище
func NewSQLStore(ctx context.Context, db *sql.DB) (*SQLStore, error) {
	s := &SQLStore{db: db}
	if err := s.createTables(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) createTables(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id INTEGER PRIMARY KEY,
			name TEXT,
			email TEXT,
			phone TEXT,
			address TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			name TEXT,
			price FLOAT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id INTEGER PRIMARY KEY,
			customer_id INTEGER,
			"date" TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id INTEGER PRIMARY KEY,
			order_id INTEGER,
			product_id INTEGER
		)`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// AddCustomer вставляет клиента без проверки уникальности email
// и заполняет ID созданной строки
func (s *SQLStore) AddCustomer(ctx context.Context, c *domain.Customer) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (name, email, phone, address) VALUES (?, ?, ?, ?)`,
		c.Name, c.Email, c.Phone, c.Address)
	if err != nil {
		return fmt.Errorf("add customer: %w", err)
	}
	c.ID, err = res.LastInsertId()
	return err
}

// AddProduct вставляет товар и заполняет ID созданной строки
func (s *SQLStore) AddProduct(ctx context.Context, p *domain.Product) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO products (name, price) VALUES (?, ?)`,
		p.Name, p.Price)
	if err != nil {
		return fmt.Errorf("add product: %w", err)
	}
	p.ID, err = res.LastInsertId()
	return err
}

// CustomerIDByEmail возвращает id первого клиента с данным email
func (s *SQLStore) CustomerIDByEmail(ctx context.Context, email string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM customers WHERE email = ?`, email).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("customer %s: %w", email, ErrNotFound)
	}
	return id, err
}

// ProductIDByNamePrice возвращает id первого товара с точным совпадением (name, price)
func (s *SQLStore) ProductIDByNamePrice(ctx context.Context, name string, price float64) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM products WHERE name = ? AND price = ?`, name, price).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("product %s: %w", name, ErrNotFound)
	}
	return id, err
}

// AddOrder сохраняет заказ и его позиции в одной транзакции.
// Клиент и каждый товар должны уже существовать в хранилище; при
// нерезолвящейся ссылке транзакция откатывается целиком.
func (s *SQLStore) AddOrder(ctx context.Context, o *domain.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var customerID int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM customers WHERE email = ?`, o.Customer.Email).Scan(&customerID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return fmt.Errorf("customer %s: %w", o.Customer.Email, ErrNotFound)
	}
	if err != nil {
		tx.Rollback()
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (customer_id, "date") VALUES (?, ?)`,
		customerID, o.Date)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("add order: %w", err)
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, p := range o.Products {
		var productID int64
		err = tx.QueryRowContext(ctx,
			`SELECT id FROM products WHERE name = ? AND price = ?`, p.Name, p.Price).Scan(&productID)
		if err == sql.ErrNoRows {
			tx.Rollback()
			return fmt.Errorf("product %s: %w", p.Name, ErrNotFound)
		}
		if err != nil {
			tx.Rollback()
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO order_items (order_id, product_id) VALUES (?, ?)`,
			orderID, productID); err != nil {
			tx.Rollback()
			return fmt.Errorf("add order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	o.ID = orderID
	return nil
}

// OrdersByDate возвращает количество заказов по датам
func (s *SQLStore) OrdersByDate(ctx context.Context) ([]DateCount, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT "date", COUNT(*) FROM orders GROUP BY "date" ORDER BY "date"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DateCount
	for rows.Next() {
		var dc DateCount
		if err := rows.Scan(&dc.Date, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

// ExportCSV выписывает все строки таблицы: первая строка — имена колонок
func (s *SQLStore) ExportCSV(ctx context.Context, table string, w io.Writer) error {
	if _, ok := tableColumns[table]; !ok {
		return fmt.Errorf("%s: %w", table, ErrUnknownTable)
	}

	rows, err := s.db.QueryContext(ctx, "SELECT * FROM "+table+" ORDER BY id")
	if err != nil {
		return err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	record := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		for i, v := range vals {
			record[i] = formatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV читает CSV (первая строка — заголовок, отбрасывается) и вставляет
// строки в таблицу. Ширина строки определяется схемой целевой таблицы, а не
// фиксированной четвёркой колонок; все вставки идут в одной транзакции, так
// что битая строка откатывает весь импорт.
func (s *SQLStore) ImportCSV(ctx context.Context, table string, r io.Reader) (int, error) {
	cols, ok := tableColumns[table]
	if !ok {
		return 0, fmt.Errorf("%s: %w", table, ErrUnknownTable)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(cols)

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return 0, fmt.Errorf("import %s: empty file", table)
		}
		return 0, fmt.Errorf("import %s: %w", table, err)
	}

	insert := insertStatement(table, cols)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	n := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("import %s row %d: %w", table, n+1, err)
		}
		args := make([]any, len(cols))
		for i, col := range cols {
			args[i], err = convertField(col, record[i])
			if err != nil {
				tx.Rollback()
				return 0, fmt.Errorf("import %s row %d column %s: %w", table, n+1, col, err)
			}
		}
		if _, err := tx.ExecContext(ctx, insert, args...); err != nil {
			tx.Rollback()
			return 0, fmt.Errorf("import %s row %d: %w", table, n+1, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// insertStatement строит вставку по списку колонок схемы; имена колонок
// заключаются в кавычки, поскольку date — зарезервированное слово
func insertStatement(table string, cols []string) string {
	stmt := "INSERT INTO " + table + " ("
	for i, c := range cols {
		if i > 0 {
			stmt += ", "
		}
		stmt += `"` + c + `"`
	}
	stmt += ") VALUES ("
	for i := range cols {
		if i > 0 {
			stmt += ", "
		}
		stmt += "?"
	}
	return stmt + ")"
}

// convertField приводит поле CSV к типу колонки: id-колонки — целые,
// price — число с плавающей точкой, остальное — текст как есть
func convertField(col, value string) (any, error) {
	switch col {
	case "id", "customer_id", "order_id", "product_id":
		return strconv.ParseInt(value, 10, 64)
	case "price":
		return strconv.ParseFloat(value, 64)
	default:
		return value, nil
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}
