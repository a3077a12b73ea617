package invoice

import (
	"fmt"
	"time"
)

// Taxa fixa de processamento somada ao total de faturas pagáveis por cartão.
const ProcessingFee = 5.00

const numberPrefix = "INV"

// Number gera o identificador no formato PREFIX-YYYYMMDD-últimos4(epoch ms).
// Colisão é teoricamente possível e aceita; não há verificação contra
// números já emitidos.
func Number(now time.Time) string {
	ms := now.UnixMilli()
	return fmt.Sprintf("%s-%s-%04d", numberPrefix, now.Format("20060102"), ms%10000)
}

func Total(price float64) float64 {
	return price + ProcessingFee
}
