package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"
)

type DeploymentStatus string

const (
	StatusPending  DeploymentStatus = "pending"
	StatusSuccess  DeploymentStatus = "success"
	StatusReverted DeploymentStatus = "reverted"
	StatusFailed   DeploymentStatus = "failed"
)

// Deployment is one attempt to deploy the gateway diamond.
type Deployment struct {
	Id              int64
	Network         string
	ChainId         uint64
	Deployer        common.Address
	TxHash          common.Hash
	ContractAddress common.Address
	Status          DeploymentStatus
	RevertError     string
	RevertData      []byte
	BlockNumber     uint64
	CreatedAt       time.Time
}

type DeploymentRepository struct {
	Db *sqlx.DB
}

type deploymentRow struct {
	Id              int64  `db:"id"`
	Network         string `db:"network"`
	ChainId         int64  `db:"chain_id"`
	Deployer        string `db:"deployer"`
	TxHash          string `db:"tx_hash"`
	ContractAddress string `db:"contract_address"`
	Status          string `db:"status"`
	RevertError     string `db:"revert_error"`
	RevertData      string `db:"revert_data"`
	BlockNumber     int64  `db:"block_number"`
	CreatedAt       int64  `db:"created_at"`
}

func (r *DeploymentRepository) CreateTables() error {
	autoIncrement := "INTEGER"

	if r.Db.DriverName() == "postgres" {
		autoIncrement = "SERIAL"
	}

	schema := `CREATE TABLE IF NOT EXISTS gateway_deployments (
		id 					%s NOT NULL PRIMARY KEY,
		network				text NOT NULL,
		chain_id			bigint NOT NULL,
		deployer			text NOT NULL,
		tx_hash				text NOT NULL,
		contract_address	text NOT NULL,
		status				text NOT NULL,
		revert_error		text NOT NULL,
		revert_data			text NOT NULL,
		block_number		bigint NOT NULL,
		created_at			bigint NOT NULL);
	CREATE INDEX IF NOT EXISTS idx_gateway_deployments_network ON gateway_deployments(network);
	CREATE INDEX IF NOT EXISTS idx_gateway_deployments_tx_hash ON gateway_deployments(tx_hash);`
	schema = fmt.Sprintf(schema, autoIncrement)
	_, err := r.Db.Exec(schema)
	if err == nil {
		slog.Debug("repository: deployments table created")
	} else {
		slog.Error("repository: create table error", "error", err)
	}
	return err
}

func (r *DeploymentRepository) Create(ctx context.Context, d Deployment) (*Deployment, error) {
	insertSql := `INSERT INTO gateway_deployments (
		network,
		chain_id,
		deployer,
		tx_hash,
		contract_address,
		status,
		revert_error,
		revert_data,
		block_number,
		created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id`

	if d.Status == "" {
		d.Status = StatusPending
	}
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}
	var id int64
	err := r.Db.QueryRowxContext(
		ctx,
		insertSql,
		d.Network,
		int64(d.ChainId),
		d.Deployer.Hex(),
		d.TxHash.Hex(),
		d.ContractAddress.Hex(),
		string(d.Status),
		d.RevertError,
		common.Bytes2Hex(d.RevertData),
		int64(d.BlockNumber),
		d.CreatedAt.UnixMilli(),
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	d.Id = id
	d.CreatedAt = time.UnixMilli(d.CreatedAt.UnixMilli())
	return &d, nil
}

// UpdateStatus stores the outcome of the deployment identified by its tx hash.
func (r *DeploymentRepository) UpdateStatus(ctx context.Context, d Deployment) error {
	updateSql := `UPDATE gateway_deployments
		SET status = $1, contract_address = $2, revert_error = $3, revert_data = $4, block_number = $5
		WHERE tx_hash = $6`

	res, err := r.Db.ExecContext(
		ctx,
		updateSql,
		string(d.Status),
		d.ContractAddress.Hex(),
		d.RevertError,
		common.Bytes2Hex(d.RevertData),
		int64(d.BlockNumber),
		d.TxHash.Hex(),
	)
	if err != nil {
		slog.Error("repository: error updating deployment", "error", err)
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("deployment with tx %v not found", d.TxHash.Hex())
	}
	return nil
}

// FindByNetwork lists the deployments of a network, newest first.
func (r *DeploymentRepository) FindByNetwork(ctx context.Context, network string) ([]Deployment, error) {
	query := `SELECT * FROM gateway_deployments WHERE network = $1 ORDER BY id DESC`
	var rows []deploymentRow
	if err := r.Db.SelectContext(ctx, &rows, query, network); err != nil {
		return nil, err
	}
	deployments := make([]Deployment, len(rows))
	for i, row := range rows {
		deployments[i] = row.toDeployment()
	}
	return deployments, nil
}

// FindLatestSuccessful returns nil when the network has no successful deployment.
func (r *DeploymentRepository) FindLatestSuccessful(ctx context.Context, network string) (*Deployment, error) {
	query := `SELECT * FROM gateway_deployments
		WHERE network = $1 AND status = $2
		ORDER BY id DESC LIMIT 1`
	var row deploymentRow
	err := r.Db.GetContext(ctx, &row, query, network, string(StatusSuccess))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	d := row.toDeployment()
	return &d, nil
}

func (row deploymentRow) toDeployment() Deployment {
	return Deployment{
		Id:              row.Id,
		Network:         row.Network,
		ChainId:         uint64(row.ChainId),
		Deployer:        common.HexToAddress(row.Deployer),
		TxHash:          common.HexToHash(row.TxHash),
		ContractAddress: common.HexToAddress(row.ContractAddress),
		Status:          DeploymentStatus(row.Status),
		RevertError:     row.RevertError,
		RevertData:      common.Hex2Bytes(row.RevertData),
		BlockNumber:     uint64(row.BlockNumber),
		CreatedAt:       time.UnixMilli(row.CreatedAt),
	}
}
