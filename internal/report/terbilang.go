package report

import "strings"

var satuan = [12]string{
	"", "Satu", "Dua", "Tiga", "Empat", "Lima",
	"Enam", "Tujuh", "Delapan", "Sembilan", "Sepuluh", "Sebelas",
}

// Terbilang mengeja nilai rupiah dalam bahasa Indonesia untuk kuitansi,
// mis. 545000 -> "Lima Ratus Empat Puluh Lima Ribu". Nilai negatif dieja
// tanpa tanda.
func Terbilang(n int64) string {
	if n < 0 {
		n = -n
	}
	return strings.TrimSpace(spell(n))
}

func spell(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 12:
		return " " + satuan[n]
	case n < 20:
		return spell(n-10) + " Belas"
	case n < 100:
		return spell(n/10) + " Puluh" + spell(n%10)
	case n < 200:
		return " Seratus" + spell(n-100)
	case n < 1000:
		return spell(n/100) + " Ratus" + spell(n%100)
	case n < 2000:
		return " Seribu" + spell(n-1000)
	case n < 1000000:
		return spell(n/1000) + " Ribu" + spell(n%1000)
	case n < 1000000000:
		return spell(n/1000000) + " Juta" + spell(n%1000000)
	case n < 1000000000000:
		return spell(n/1000000000) + " Milyar" + spell(n%1000000000)
	default:
		return ""
	}
}
