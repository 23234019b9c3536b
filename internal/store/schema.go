package store

import "github.com/shunichi-ikebuchi/property-backoffice/pkg/models"

// Schema defines the SQL statements to create database tables.
// Rent-roll style dates are stored as yyyy/MM/dd, transaction style dates
// as yyyy-MM-dd; both keep year, month and day at fixed offsets so period
// filters can use substr.
const Schema = `
CREATE TABLE IF NOT EXISTS properties (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rent_rolls (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    floor TEXT NOT NULL DEFAULT '',
    room_number TEXT NOT NULL,
    room_usage TEXT NOT NULL DEFAULT '',
    contractor TEXT NOT NULL DEFAULT '',
    contract_date TEXT NOT NULL DEFAULT '',
    rental_area REAL NOT NULL DEFAULT 0,
    rent REAL NOT NULL DEFAULT 0,
    maintenance_fee REAL NOT NULL DEFAULT 0,
    tax REAL NOT NULL DEFAULT 0,
    total_rent REAL NOT NULL DEFAULT 0,
    unit_price REAL NOT NULL DEFAULT 0,
    parking_fee REAL NOT NULL DEFAULT 0,
    bike_parking_fee REAL NOT NULL DEFAULT 0,
    bicycle_parking_fee REAL NOT NULL DEFAULT 0,
    storage_fee REAL NOT NULL DEFAULT 0,
    total_fee REAL NOT NULL DEFAULT 0,
    bicycle_parking_number TEXT NOT NULL DEFAULT '',
    renewal_fee REAL NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL              -- yyyy/MM/dd
);

CREATE INDEX IF NOT EXISTS idx_rent_rolls_property
    ON rent_rolls(property_id, created_at);

CREATE TABLE IF NOT EXISTS deposits (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    rent_roll_id INTEGER NOT NULL REFERENCES rent_rolls(id) ON DELETE CASCADE,
    deposit REAL NOT NULL DEFAULT 0,
    suubiki REAL NOT NULL DEFAULT 0,
    guarantee_money REAL NOT NULL DEFAULT 0,
    reikin REAL NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS utility_expenses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    rent_roll_id INTEGER NOT NULL REFERENCES rent_rolls(id) ON DELETE CASCADE,
    electricity REAL NOT NULL DEFAULT 0,
    water REAL NOT NULL DEFAULT 0,
    gas REAL NOT NULL DEFAULT 0,
    other1 REAL NOT NULL DEFAULT 0,
    other2 REAL NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL              -- yyyy/MM/dd
);

CREATE TABLE IF NOT EXISTS water_fees (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    rent_roll_id INTEGER NOT NULL REFERENCES rent_rolls(id) ON DELETE CASCADE,
    previous_reading REAL NOT NULL DEFAULT 0,
    current_reading REAL NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL              -- yyyy/MM/dd
);

CREATE INDEX IF NOT EXISTS idx_water_fees_unit
    ON water_fees(rent_roll_id, created_at);

CREATE TABLE IF NOT EXISTS monthly_rent_incomes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    rent_roll_id INTEGER NOT NULL REFERENCES rent_rolls(id) ON DELETE CASCADE,
    year INTEGER NOT NULL,
    month INTEGER NOT NULL,
    contractor_payment_date TEXT NOT NULL DEFAULT '',
    contractor_payment_amount REAL NOT NULL DEFAULT 0,
    substitute_payment_date TEXT NOT NULL DEFAULT '',
    substitute_payment_amount REAL NOT NULL DEFAULT 0,
    substitute_payer TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_monthly_rent_incomes_period
    ON monthly_rent_incomes(property_id, year, month);

CREATE TABLE IF NOT EXISTS rent_income_history (
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    rent_roll_id INTEGER NOT NULL REFERENCES rent_rolls(id) ON DELETE CASCADE,
    year INTEGER NOT NULL,
    month INTEGER NOT NULL,
    income_amount REAL NOT NULL DEFAULT 0,
    difference_amount REAL NOT NULL DEFAULT 0,
    PRIMARY KEY (rent_roll_id, year, month)
);

CREATE TABLE IF NOT EXISTS uncollected_payments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    rent_roll_id INTEGER NOT NULL,        -- may outlive its unit; shown as unregistered
    details TEXT NOT NULL DEFAULT '',
    guarantee_company TEXT NOT NULL DEFAULT '',
    notes TEXT NOT NULL DEFAULT '',
    contact_info TEXT NOT NULL DEFAULT '',
    pre_difference REAL NOT NULL DEFAULT 0,
    deposit_adjustment REAL NOT NULL DEFAULT 0,
    post_move_in_payment REAL NOT NULL DEFAULT 0,
    uncollectible REAL NOT NULL DEFAULT 0,
    year INTEGER NOT NULL,
    month INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS income_expenses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    created_at TEXT NOT NULL,             -- yyyy-MM-dd
    type TEXT NOT NULL CHECK (type IN ('INCOME', 'EXPENSE')),
    partner TEXT NOT NULL DEFAULT '',
    code TEXT NOT NULL,
    subject TEXT NOT NULL DEFAULT '',
    amount REAL NOT NULL DEFAULT 0,
    tax REAL NOT NULL DEFAULT 0,
    total REAL NOT NULL DEFAULT 0,
    details TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_income_expenses_code
    ON income_expenses(property_id, code, created_at);

CREATE TABLE IF NOT EXISTS input_manuals (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    sort_order INTEGER NOT NULL DEFAULT 0,
    sheet_name TEXT NOT NULL,
    work_progress TEXT NOT NULL CHECK (work_progress IN ('COMPLETED', 'IN_PROGRESS')),
    work_content TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL              -- yyyy-MM-dd
);

CREATE TABLE IF NOT EXISTS past_documents (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    property_id INTEGER NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
    file_name TEXT NOT NULL,
    content_type TEXT NOT NULL DEFAULT 'application/octet-stream',
    size INTEGER NOT NULL DEFAULT 0,
    blob_name TEXT NOT NULL,              -- file name under the upload directory
    created_at TEXT NOT NULL              -- yyyy/MM/dd
);
`

// periodFilter is appended to WHERE clauses filtering a created_at column by
// year, month and day. Arguments come from periodArgs; a zero level matches
// everything.
const periodFilter = `
    AND (? = 0 OR CAST(substr(created_at, 1, 4) AS INTEGER) = ?)
    AND (? = 0 OR CAST(substr(created_at, 6, 2) AS INTEGER) = ?)
    AND (? = 0 OR CAST(substr(created_at, 9, 2) AS INTEGER) = ?)`

func periodArgs(p models.Period) []any {
	return []any{p.Year, p.Year, p.Month, p.Month, p.Day, p.Day}
}
