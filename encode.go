package finances

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The data files are JSONL: one JSON object per line. accounts.jsonl lists
// the account attributes; each account has an observation file named after
// its id; holdings.jsonl is the share transaction log.

// DecodeAccounts decodes the accounts table from a stream of JSONL data.
// Attribute values are validated line by line; the derived account list
// enforces id uniqueness.
func DecodeAccounts(r io.Reader) (*AccountList, error) {
	var accounts []*Account
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var row struct {
			AccountID string `json:"account_id"`
			Bank      string `json:"bank"`
			Number    string `json:"account_number"`
			Type      string `json:"type"`
			Currency  string `json:"currency"`
			Status    string `json:"status"`
		}
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("accounts line %d: %w", line, err)
		}
		typ, err := ParseAccountType(row.Type)
		if err != nil {
			return nil, fmt.Errorf("accounts line %d: %w", line, err)
		}
		status, err := ParseAccountStatus(row.Status)
		if err != nil {
			return nil, fmt.Errorf("accounts line %d: %w", line, err)
		}
		accounts = append(accounts, &Account{
			ID:       row.AccountID,
			Bank:     row.Bank,
			Number:   row.Number,
			Type:     typ,
			Currency: row.Currency,
			Status:   status,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewAccountList(accounts...)
}

// EncodeAccounts writes the accounts table as JSONL.
func EncodeAccounts(w io.Writer, list *AccountList) error {
	enc := json.NewEncoder(w)
	for a := range list.All() {
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("could not encode account %q: %w", a.ID, err)
		}
	}
	return nil
}

// DecodeObservations decodes one account's transaction history from JSONL.
func DecodeObservations(r io.Reader) ([]Observation, error) {
	var obs []Observation
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var o Observation
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, fmt.Errorf("observation line %d: %w", line, err)
		}
		obs = append(obs, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return obs, nil
}

// EncodeObservations writes an observation history as JSONL.
func EncodeObservations(w io.Writer, obs []Observation) error {
	enc := json.NewEncoder(w)
	for _, o := range obs {
		if err := enc.Encode(o); err != nil {
			return fmt.Errorf("could not encode observation on %s: %w", o.Date, err)
		}
	}
	return nil
}

// DecodeShareTransactions decodes the holdings transaction log from JSONL.
func DecodeShareTransactions(r io.Reader) ([]ShareTransaction, error) {
	var txs []ShareTransaction
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var tx ShareTransaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return nil, fmt.Errorf("share transaction line %d: %w", line, err)
		}
		if tx.Instrument == "" {
			return nil, fmt.Errorf("share transaction line %d: missing instrument", line)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return txs, nil
}
