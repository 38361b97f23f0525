package translog

import (
	"errors"
	"fmt"
	"os"

	"payflow/payments"
)

const defaultPath = "transactions.log"

// ErrLogWrite is returned when the transaction log cannot be opened or
// written. The pipeline does not recover from it; by the time logging fails
// the charge has already happened.
var ErrLogWrite = errors.New("transaction log write failed")

// TransactionLogger appends a two-line record per transaction to a flat
// text file. Entries have no delimiter and the file is never rotated.
// Access is assumed single-process and sequential; concurrent writers could
// interleave the two lines of an entry.
type TransactionLogger struct {
	path string
}

// NewTransactionLogger uses path, or "transactions.log" in the working
// directory when path is empty.
func NewTransactionLogger(path string) *TransactionLogger {
	if path == "" {
		path = defaultPath
	}
	return &TransactionLogger{path: path}
}

// Log appends "<name> paid <amount>" and "Payment status: <status>" for one
// completed charge. The file handle is released on every exit path.
func (l *TransactionLogger) Log(customer payments.CustomerData, payment payments.PaymentData, charge payments.Charge) error {
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", ErrLogWrite, l.path, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s paid %d\n", customer.Name, payment.Amount); err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}
	if _, err := fmt.Fprintf(f, "Payment status: %s\n", charge.Status); err != nil {
		return fmt.Errorf("%w: %v", ErrLogWrite, err)
	}
	return nil
}
