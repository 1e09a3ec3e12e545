package utils

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/skip2/go-qrcode"
)

// GeneratePaymentQR génère un QR SEPA (EPC) en base64 prêt à mettre dans <img src="...">.
// Le client peut le scanner pour régler l'addition par virement.
func GeneratePaymentQR(ref string, amount float64) (string, error) {
	iban := os.Getenv("RESTO_IBAN")
	bic := os.Getenv("RESTO_BIC")
	name := os.Getenv("RESTO_NAME")
	if name == "" {
		name = "Restaurant"
	}

	// format EPC basique
	sepa := fmt.Sprintf(`BCD
001
1
SCT
%s
%s
%s
EUR%.2f
%s`, bic, name, iban, amount, ref)

	png, err := qrcode.Encode(sepa, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
