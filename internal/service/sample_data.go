package service

import (
	"github.com/yourusername/checkmyxy-api/internal/domain/entity"
)

// SampleQuestions возвращает стартовый банк вопросов по теме SPLDV
// (системы линейных уравнений с двумя переменными): по пять вопросов
// на этап, сложность растёт вместе с весом вопроса (4, 7, 9 баллов).
// Идентификаторы не заполнены, их назначает QuestionService при записи.
func SampleQuestions() []entity.Question {
	return []entity.Question{
		// Этап 1 (базовый)
		{
			Stage:   1,
			Type:    entity.QuestionTypeMCQ,
			Text:    "Dari pernyataan dibawah ini mana yang termasuk SPLDV? (i) x^2+3=2 dan x+2y+4 (ii) 2x+4y=6 dan 8x+y=4 (iii) 4x+6y=3",
			Options: entity.StringArray{"(i) dan (ii)", "(i) dan (iii)", "(ii)", "(ii) dan (iii)"},
			Answer:  "(ii)",
			Score:   4,
			Explain: "SPLDV adalah sistem yang terdiri dari dua persamaan linear dengan dua variabel. Pernyataan (ii) memenuhi syarat karena memiliki dua persamaan linear dengan variabel x dan y. Pernyataan (i) tidak termasuk SPLDV karena mengandung x^2, sehingga bukan persamaan linear. Pernyataan (iii) tidak termasuk SPLDV karena hanya memiliki satu persamaan.",
		},
		{
			Stage:   1,
			Type:    entity.QuestionTypeShort,
			Text:    "1 gorengan dan 1 es teh harganya Rp5.000. 2 gorengan dan 1 es teh harganya Rp7.000.Berapakah harga 1 gorengan? (Tulis jawaban dengan format: Rpx.xxx)",
			Answer:  "Rp2.000",
			Score:   4,
			Explain: "Misalkan: g = harga 1 gorengan; e = harga 1 es teh; Sehingga g + e = 5.000...(i) 2g + e = 7.000...(ii); kurangi pers (i) dan (ii) diperoleh -g = -2.000 g = 2.000 Diperoleh bahwa harga 1 gorengan adalah Rp2.000.",
		},
		{
			Stage:   1,
			Type:    entity.QuestionTypeTrueFalse,
			Text:    "Tentukan apakah pernyataan berikut BENAR atau SALAH! Metode Substitusi dan Metode Eliminasi adalah cara untuk menyelesaikan SPLDV. Metode Substitusi dilakukan dengan mengganti salah satu variabel menggunakan ekspresi dari persamaan lain. Metode Eliminasi dilakukan dengan menghilangkan salah satu variabel melalui penjumlahan atau pengurangan persamaan.",
			Options: entity.TrueFalseOptions(),
			Answer:  "Benar",
			Score:   4,
			Explain: "Metode Substitusi (Mengganti salah satu variabel dengan ekspresi dari persamaan lain). Metode Eliminasi (Menghilangkan salah satu variabel dengan menjumlahkan atau mengurangkan persamaan).",
		},
		{
			Stage:   1,
			Type:    entity.QuestionTypeMCQ,
			Text:    "Tentukan nilai x dan y dari : x+y=10 dan x-y=2",
			Options: entity.StringArray{"6 dan 4", "4 dan 6", "2 dan 8", "8 dan 2"},
			Answer:  "6 dan 4",
			Score:   4,
			Explain: "diperoleh persamaan x + y = 10...(i) dan x - y = 2...(ii) kurangi pers. (i) dan (ii), diperoleh 2y = 8; y = 4 Diperoleh bahwa nilai y yang memenuhi adalah 4. Substitusi y = 4 ke dalam persamaan (i): x + 4 = 10; x = 6 Diperoleh bahwa nilai x yang memenuhi adalah 6; Jadi, x = 6 dan y = 4",
		},
		{
			Stage:   1,
			Type:    entity.QuestionTypeTrueFalse,
			Text:    "Tentukan apakah pernyataan berikut BENAR atau SALAH! Diketahui: Harga 1 apel dan 2 pisang adalah Rp9.000. Harga 1 apel dan 1 pisang adalah Rp6.000. Diperoleh bahwa harga 1 pisang adalah Rp4.000",
			Options: entity.TrueFalseOptions(),
			Answer:  "Salah",
			Score:   4,
			Explain: "Misalkan: a = harga 1 apel b = harga 1 pisang; Sehingga a + 2b = 9.000...(i) dan a + b = 6.000...(ii) → b = 3.000; Diperoleh bahwa harga 1 pisang adalah Rp3.000.",
		},

		// Этап 2 (средний)
		{
			Stage:   2,
			Type:    entity.QuestionTypeMCQ,
			Text:    "Harga 2 buku dan 3 pensil adalah Rp18.000. Harga 1 buku dan 1 pensil adalah Rp7.000. Tentukan harga satu buku!",
			Options: entity.StringArray{"Rp6.000", "Rp4.500", "Rp3.000", "Rp5.000"},
			Answer:  "Rp3.000",
			Score:   7,
			Explain: "Misalkan, b = harga 1 buku; p = harga 1 pensil. Diketahui: 2b + 3p = 18.000...(i) dan b + p = 7.000...(ii) (kalikan 3) Sehingga diperoleh persamaan 2b + 3p = 18.000 dan 3b + 3p = 21.000. Kurangi kedua pers. diperoleh -b = -3.000 → b = 3.000. Diperoleh bahwa harga 1 buku adalah Rp3.000",
		},
		{
			Stage:   2,
			Type:    entity.QuestionTypeTrueFalse,
			Text:    "Tentukan apakah pernyataan berikut BENAR atau SALAH! Sebuah kantin menjual 2 roti dan 3 gelas teh dengan harga Rp19.000. Sedangkan 4 roti dan 2 gelas teh harganya Rp26.000. Maka harga satu roti adalah Rp6.500.",
			Options: entity.TrueFalseOptions(),
			Answer:  "Salah",
			Score:   7,
			Explain: "Misalkan: r = harga 1 roti; t = harga 1 gelas teh. Diketahui 4r + 2t = 26.000...(ii) kalikan 3 dan 2r + 3t = 19.000...(i) kalikan 2. Sehingga 12r + 6t = 78.000 dan 4r + 6t = 38.000. Kurangi kedua pers. Diperoleh 8r = 40.000 → r = 5.000. Diperoleh bahwa harga 1 gelas teh adalah Rp5.000",
		},
		{
			Stage:   2,
			Type:    entity.QuestionTypeShort,
			Text:    "Di sebuah area parkir terdapat 40 kendaraan, yaitu mobil dan motor. Jumlah seluruh roda kendaraan tersebut adalah 124. Berapa banyak mobil yang ada di parkiran?",
			Answer:  "22",
			Score:   7,
			Explain: "Misalkan: m = banyak mobil; s = banyak motor. Diketahui: Total kendaraan 40. Total roda 124. Mobil punya 4 roda. Motor punya 2 roda. Sehingga m + s = 40...(i) (kalikan 2) dan 4m + 2s = 124...(ii). Diperoleh 2m + 2s = 80 dan 4m + 2s = 124 → -2m = -44 → m = 22. Sehingga terdapat 22 mobil diparkiran.",
		},
		{
			Stage:   2,
			Type:    entity.QuestionTypeMCQ,
			Text:    "Di sebuah peternakan terdapat ayam dan kambing. Jumlah seluruh hewan ada 56 ekor. Jika jumlah ayam 8 ekor lebih banyak daripada kambing, tentukan jumlah masing-masing hewan!",
			Options: entity.StringArray{"22 ekor dan 33 ekor", "33 ekor dan 14 ekor", "24 ekor dan 32 ekor", "21 ekor dan 44 ekor"},
			Answer:  "24 ekor dan 32 ekor",
			Score:   7,
			Explain: "Misalkan, x = jumlah ayam; y = jumlah kambing. Diketahui: x + y = 56...(i) dan x - y = 8...(ii) kurangi → 2y = 48 → y = 24 Diperoleh bahwa jumlah kambing adalah 24 ekor. Substitusi y = 24 kedalam persamaan (ii) x - 24 = 8 → x = 32. Diperoleh bahwa jumlah ayam adalah 32 ekor. jadi, x = 24 ekor & y = 32 ekor",
		},
		{
			Stage:   2,
			Type:    entity.QuestionTypeTrueFalse,
			Text:    "Tentukan apakah pernyataan berikut BENAR atau SALAH! 3 tiket konser + 2 minuman = Rp150.000; 1 tiket + 4 minuman = Rp80.000 sehingga 2 tiket + 5 minuman = Rp133.000",
			Options: entity.TrueFalseOptions(),
			Answer:  "Benar",
			Score:   7,
			Explain: "Misalkan, t = harga 1 tiket konser; m = harga 1 minuman. Diketahui 3t + 2m = 150.000...(i) (kalikan 2) dan t + 4m = 80.000...(ii) Sehingga diperoleh persamaan 6t + 4m = 300.000 dan t + 4m = 80.000 kurangi → 5t = 220.000 → t = 44.000. Diperoleh bahwa harga 1 tiket adalah 44.000. Substitusi t = 44.000 ke dalam persamaan (ii): 44.000 + 4m = 80.000 → 4m = 36.000 → m = 9.000. Diperoleh bahwa harga 1 minuman adalah 9.000. Sehingga, harga 2 tiket dan 5 minuman adalah Rp133.000",
		},

		// Этап 3 (сложный)
		{
			Stage:   3,
			Type:    entity.QuestionTypeShort,
			Text:    "Di tempat parkir sebuah pertokoan terdapat 75 kendaraan yang terdiri dari mobil dan sepeda motor. Banyak roda seluruhnya ada 210. Jika tarif parkir untuk mobil Rp5.000 dan sepeda motor Rp2.000, maka pendapatan uang parkir saat itu adalah… (Tulis jawaban dengan format: Rpx.xxx)",
			Answer:  "Rp240.000",
			Score:   9,
			Explain: "Misalkan: m = jumlah mobil ; s = jumlah motor. Diketahui: m + s = 75...(i) kalikan 2 dan 4m + 2s = 210...(ii) Sehingga, 2m + 2s = 150 dan 4m + 2s = 210 → -2m = -60 → m = 30Diperoleh bahwa jumlah mobil dalam parkiran adalah 30. Substitusi m = 30.000 kedalam persamaan (i) 30 + s = 75 → s = 45 Diperoleh bahwa jumlah motor dalam parkiran adalah 45. Jadi, pendapatan yang diperoleh adalah Rp240.000",
		},
		{
			Stage:   3,
			Type:    entity.QuestionTypeMCQ,
			Text:    "Harga 4 buah compact disc dan 5 buah kaset Rp. 200.000,00, sedangkan harga 2 buah compact disk dan 3 buah kaset yang sama Rp. 110.000,00. Harga 6 buah compact disc dan 5 buah kaset adalah...",
			Options: entity.StringArray{"Rp150.000", "Rp250.000", "Rp350.000", "Rp450.000"},
			Answer:  "Rp250.000",
			Score:   9,
			Explain: "Misalkan: c = harga satu compact disc; k = harga satu kaset. Diketahui: 4c + 5k = 200.000...(i) dan 2c + 3k = 110.000...(ii) kalikan 2. Sehingga 4c + 5k = 200.000 dan 4c + 6k = 220.000 → k = 20.000. Diperoleh bahwa harga satu kaset adalah 20.000. Substitusi k = 20.000 kedalam persamaan (ii) 2c + 3(20.000)= 110.000 → 2c + 60.000 = 110.000 → 2c = 50.000 → c = 25.000. Diperoleh bahwa harga satu compact disc adalah 25.000. Jadi, harga 6 compact disc dan 5 kaset adalah Rp250.000",
		},
		{
			Stage:   3,
			Type:    entity.QuestionTypeTrueFalse,
			Text:    "Tentukan apakah pernyataan berikut BENAR atau SALAH! Dalam sebuah lomba terdapat 50 peserta laki-laki dan 20 peserta perempuan. Jika 8 laki-laki dipindahkan dan 5 perempuan ditambahkan, maka jumlah laki-laki menjadi sama dengan jumlah perempuan. Selain itu, jika seperempat laki-laki dipindahkan dan 3 perempuan mengundurkan diri, maka jumlah laki-laki yang tersisa akan menjadi 6 orang lebih banyak daripada jumlah perempuan yang tersisa.",
			Options: entity.TrueFalseOptions(),
			Answer:  "Salah",
			Score:   9,
			Explain: "Misalkan: L = laki-laki awal; P = perempuan awal. Diketahui: L - P = 13...(1) kalikan 4 dan 3L - 4P = 12...(2) Sehingga 4L - 4P = 52 dan 3L - 4P = 12 → L = 40. Diperoleh bahwa jumlah awal peserta laki-laki adalah sebanyak 40. Substitusi L = 40 kedalam persamaan (i) 40 - P = 13 → P = 27. Diperoleh bahwa jumlah awal peserta perempuan adalah sebanyak 27 orang. Jadi, P = 27 dan L = 40",
		},
		{
			Stage:   3,
			Type:    entity.QuestionTypeShort,
			Text:    "Hari ini seorang pedagang majalah berhasil menjual majalah A dan majalah B sebanyak 28 eksemplar. Harga 1 majalah A adalah Rp6.000 dan harga 1 majalah B adalah Rp9.000. Jika hasil penjualan kedua majalah hari ini adalah Rp216.000 maka banyak majalah A dan majalah B yang terjual hari ini berturut-turut adalah...",
			Answer:  "12 dan 16",
			Score:   9,
			Explain: "Misalkan: A = jumlah majalah A ; B = jumlah majalah B. Diketahui: A + B = 28...(i)  dan 6.000A + 9.000B = 216.000...(ii) bagi persamaan (ii) dengan 3.000. Sehingga, 2A + 3B = 72...(iii) dari persamaan 1 diperoleh A = 28 - B. Substitusi A = 28 - B kedalam persamaan (iii) 2A + 3B = 72 → 2(28 - B) + 3B = 72 → 56 - 2B + 3B = 72 → B = 16. Diperoleh bahwa jumlah majalah B dalam adalah 16. Substitusi B = 16 kedalam persamaan (iii) 2A + 3B = 72 2A + 3(16) = 72 → 2A + 48 =72 → 2A = 24 → A = 12. Diperoleh bahwa jumlah majalah A dalam adalah 12. Jadi, A = 12 dan B = 16",
		},
		{
			Stage:   3,
			Type:    entity.QuestionTypeMCQ,
			Text:    "Budi membeli 2 kaos dan sebuah sweater di pasar dengan harga Rp300.000. Sesampai dirumah ternyata salah satu kaos sobek, sehingga ia memutuskan untuk menukarkan satu kaos dengan sebuah sweater. Karena sweater lebih mahal maka ia harus membayar lagi Rp60.000. Harga masing-masing sweater dan kaos, berturut-turut adalah",
			Options: entity.StringArray{"Rp240.000 dan Rp160.000", "Rp100.000 dan Rp140.000", "Rp80.000 dan Rp200.000", "Rp140.000 dan Rp80.000"},
			Answer:  "Rp140.000 dan Rp80.000",
			Score:   9,
			Explain: "Misalkan: k = Harga satu kaos; s = Harga satu sweater. Diketahui: 2k + s = 300.000...(i) dan -k + s = 60.000...(ii) → 3k = 240.000 → k = 80.000 Diperoleh bahwa harga satu kaos adalah 80.000. Substitusi k = 20.000 kedalam persamaan (i) 2(80.000) + s = 300.000 → 160.000 + s = 300.000 → s = 140.000. Diperoleh bahwa harga satu sweater adalah 140.000. Jadi, sweater Rp140.000 dan kaos  Rp80.000",
		},
	}
}
