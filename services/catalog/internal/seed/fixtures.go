package seed

import "github.com/Skotchmaster/vinyl_shop/services/catalog/internal/models"

var defaultArtists = []models.Artist{
	{ID: 1, Name: "The Beatles"},
	{ID: 2, Name: "Pink Floyd"},
	{ID: 3, Name: "Led Zeppelin"},
	{ID: 4, Name: "Queen"},
	{ID: 5, Name: "The Rolling Stones"},
	{ID: 6, Name: "The Doors"},
	{ID: 7, Name: "AC/DC"},
	{ID: 8, Name: "Black Sabbath"},
	{ID: 9, Name: "David Bowie"},
	{ID: 10, Name: "Bob Dylan"},
	{ID: 11, Name: "The Who"},
	{ID: 12, Name: "Deep Purple"},
	{ID: 13, Name: "Jimi Hendrix"},
	{ID: 14, Name: "The Clash"},
	{ID: 15, Name: "Сергей Рахманинов"},
	{ID: 16, Name: "Аквариум"},
	{ID: 17, Name: "Кино"},
	{ID: 18, Name: "ДДТ"},
	{ID: 19, Name: "Алиса"},
	{ID: 20, Name: "Наутилус Помпилиус"},
	{ID: 21, Name: "Земляне"},
	{ID: 22, Name: "Машина Времени"},
	{ID: 23, Name: "Воскресение"},
	{ID: 24, Name: "Сплин"},
	{ID: 25, Name: "Разные исполнители"},
}

var defaultRecords = []models.VinylRecord{
	{
		ID:          1,
		Title:       "Abbey Road",
		ArtistID:    1,
		Description: "Легендарный альбом The Beatles 1969 года с культовой обложкой",
		Price:       3500.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=91bd9f5e4a38ad9380572f77fe800e9e29847bc9-4642926-images-thumbs&n=13",
	},
	{
		ID:          2,
		Title:       "Sgt. Pepper's Lonely Hearts Club Band",
		ArtistID:    1,
		Description: "Революционный альбом 1967 года, один из величайших в истории музыки",
		Price:       3800.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/5/50/Sgt._Pepper%27s_Lonely_Hearts_Club_Band.jpg",
	},
	{
		ID:          3,
		Title:       "The White Album",
		ArtistID:    1,
		Description: "Двойной альбом 1968 года с разнообразными музыкальными стилями",
		Price:       4200.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=1413c9b506b88090a9df3a55bc34f7525651290b31bff652-5709707-images-thumbs&n=13",
	},
	{
		ID:          4,
		Title:       "Revolver",
		ArtistID:    1,
		Description: "Новаторский альбом 1966 года с экспериментальными звуками",
		Price:       3400.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/e/ec/Revolver_%28album_cover%29.jpg",
	},
	{
		ID:          5,
		Title:       "The Dark Side of the Moon",
		ArtistID:    2,
		Description: "Культовый альбом Pink Floyd 1973 года с призмой на обложке",
		Price:       4000.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/3/3b/Dark_Side_of_the_Moon.png",
	},
	{
		ID:          6,
		Title:       "The Wall",
		ArtistID:    2,
		Description: "Концептуальный двойной альбом 1979 года о изоляции и стенах",
		Price:       4800.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=a50d345f4e05a17e5257f8850847193a0974f46c-5178729-images-thumbs&n=13",
	},
	{
		ID:          7,
		Title:       "Wish You Were Here",
		ArtistID:    2,
		Description: "Альбом 1975 года, посвященный бывшему участнику группы",
		Price:       3600.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=f1367efa02d08458f2a3191274d601517098d04b-9215166-images-thumbs&n=13",
	},
	{
		ID:          8,
		Title:       "Led Zeppelin IV",
		ArtistID:    3,
		Description: "Четвертый студийный альбом 1971 года, один из величайших рок-альбомов",
		Price:       3800.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/2/26/Led_Zeppelin_-_Led_Zeppelin_IV.jpg",
	},
	{
		ID:          9,
		Title:       "Physical Graffiti",
		ArtistID:    3,
		Description: "Двойной альбом 1975 года с разнообразными композициями",
		Price:       4200.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=06a7175cfde99b2e2f0f05f092628ff13ed01e2a-10639895-images-thumbs&n=13",
	},
	{
		ID:          10,
		Title:       "A Night at the Opera",
		ArtistID:    4,
		Description: "Великолепный альбом 1975 года с легендарной композицией Bohemian Rhapsody",
		Price:       3600.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/4/4d/Queen_A_Night_At_The_Opera.png",
	},
	{
		ID:          11,
		Title:       "News of the World",
		ArtistID:    4,
		Description: "Альбом 1977 года с хитами We Will Rock You и We Are the Champions",
		Price:       3500.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=519a31f8796ca2835ee588795ed6fe2013f6a4ea-5234915-images-thumbs&n=13",
	},
	{
		ID:          14,
		Title:       "The Doors",
		ArtistID:    6,
		Description: "Дебютный альбом 1967 года с легендарной композицией Light My Fire",
		Price:       3300.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=73f53eff85fd68e6149cefb6293ca38f49918b6c-5239568-images-thumbs&n=13",
	},
	{
		ID:          15,
		Title:       "Back in Black",
		ArtistID:    7,
		Description: "Культовый альбом 1980 года, один из самых продаваемых в истории",
		Price:       3600.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=1e14b6d0ae134845f078a8776e357e8038cc5827-6432328-images-thumbs&n=13",
	},
	{
		ID:          16,
		Title:       "Paranoid",
		ArtistID:    8,
		Description: "Второй студийный альбом 1970 года, классика хеви-метала",
		Price:       3400.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/6/64/Black_Sabbath_-_Paranoid.jpg",
	},
	{
		ID:          17,
		Title:       "The Rise and Fall of Ziggy Stardust",
		ArtistID:    9,
		Description: "Концептуальный альбом 1972 года, один из величайших в рок-музыке",
		Price:       3800.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=f57e1e457105395cd86ddab8ca51845a523d751a-5233020-images-thumbs&n=13",
	},
	{
		ID:          18,
		Title:       "Highway 61 Revisited",
		ArtistID:    10,
		Description: "Шестой студийный альбом 1965 года, поворотный момент в карьере",
		Price:       3500.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/9/95/Bob_Dylan_-_Highway_61_Revisited.jpg",
	},
	{
		ID:          19,
		Title:       "Tommy",
		ArtistID:    11,
		Description: "Рок-опера 1969 года, первый успешный альбом в этом жанре",
		Price:       4000.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=6a863b780d205ba739bffa7c6aab923d73a9ac08-5331459-images-thumbs&n=13",
	},
	{
		ID:          20,
		Title:       "Machine Head",
		ArtistID:    12,
		Description: "Шестой студийный альбом 1972 года с хитам Smoke on the Water",
		Price:       3600.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=e59aad9de98d3a17cda1e7dc52a3d7e1db2fe395-8494072-images-thumbs&n=13",
	},
	{
		ID:          21,
		Title:       "Are You Experienced",
		ArtistID:    13,
		Description: "Дебютный альбом 1967 года, революция в гитарной музыке",
		Price:       3600.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=08aa8e158506bcecfb8650c312e22bdbea643fad-4872191-images-thumbs&n=13",
	},
	{
		ID:          22,
		Title:       "London Calling",
		ArtistID:    14,
		Description: "Третий студийный альбом 1979 года, классика панк-рока",
		Price:       3900.0,
		CoverURL:    "https://upload.wikimedia.org/wikipedia/en/0/00/TheClashLondonCallingalbumcover.jpg",
	},
	{
		ID:          23,
		Title:       "С. Рахманинов. Колокола",
		ArtistID:    15,
		Description: "Виниловая пластинка фирмы «Мелодия», СССР, 1980-е годы. Состояние: отличное. Редкая запись произведений великого русского композитора.",
		Price:       3500.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=cb1678edcbd01a10a9c0ca8030dc7b49ad8e8c8b-5287637-images-thumbs&n=13",
	},
	{
		ID:          24,
		Title:       "Пьесы для органа",
		ArtistID:    25,
		Description: "Виниловая пластинка фирмы «Мелодия», СССР. Классические произведения для органа. Состояние: хорошее.",
		Price:       2800.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=3578ce28a38e0113dc59b37ef34a050914c074ff-7762396-images-thumbs&n=13",
	},
	{
		ID:          25,
		Title:       "Чёрная роза — эмблема печали",
		ArtistID:    16,
		Description: "Легендарный альбом группы Аквариум, СССР. Один из самых известных альбомов советского рока. Редкая пластинка в хорошем состоянии.",
		Price:       4000.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=5266e1b6baecdaec9966ad87e28b6cdafd113e61-5424538-images-thumbs&n=13",
	},
	{
		ID:          26,
		Title:       "Антология Советской Песни Для Школьников. Пластинка 2",
		ArtistID:    25,
		Description: "Виниловая пластинка фирмы «Мелодия», СССР. Коллекция советских песен для школьников. Состояние: хорошее.",
		Price:       650.0,
		CoverURL:    "https://cdn1.ozone.ru/s3/multimedia-1-v/c600/7048041583.jpg",
	},
	{
		ID:          27,
		Title:       "Начальник Камчатки",
		ArtistID:    17,
		Description: "Культовый альбом группы Кино, СССР, 1984 год. Редкая пластинка советского рока. Состояние: отличное.",
		Price:       4500.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=1c695561f9ca0e099db4ec43ef843726ae149730-4327459-images-thumbs&n=13",
	},
	{
		ID:          28,
		Title:       "Это всё",
		ArtistID:    17,
		Description: "Альбом группы Кино, СССР, 1990 год. Один из последних альбомов группы. Редкая пластинка.",
		Price:       5000.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=ef558975a408d8849b5f8bf388abef9c8171bb88-12829626-images-thumbs&n=13",
	},
	{
		ID:          29,
		Title:       "Чёрный пёс Петербург",
		ArtistID:    18,
		Description: "Легендарный альбом группы ДДТ, СССР, 1988 год. Редкая пластинка в коллекционном состоянии.",
		Price:       4200.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=bad8e76417424baeb1479a4fac119ec3f0ef6756-16452655-images-thumbs&n=13",
	},
	{
		ID:          31,
		Title:       "Разлука",
		ArtistID:    20,
		Description: "Культовый альбом группы Наутилус Помпилиус, СССР, 1986 год. Редкая пластинка.",
		Price:       4000.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=93c8c7dc43ebaad7504a2a907080f5e4b06d976b-4590689-images-thumbs&n=13",
	},
	{
		ID:          32,
		Title:       "Земляне",
		ArtistID:    21,
		Description: "Виниловая пластинка группы Земляне, СССР, 1980-е годы. Популярные советские хиты.",
		Price:       2500.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=91053324e43c3b83f516ae6ee077521dbf2a21fe-12985844-images-thumbs&n=13",
	},
	{
		ID:          35,
		Title:       "Пыльная Быль",
		ArtistID:    24,
		Description: "Ранний альбом группы Сплин, СССР, конец 1980-х. Редкая пластинка.",
		Price:       3200.0,
		CoverURL:    "https://i.scdn.co/image/ab67616d0000b2737483596e721f026e4d86a95e",
	},
	{
		ID:          36,
		Title:       "Танцы на крыше",
		ArtistID:    17,
		Description: "Альбом группы Кино, СССР, 1988 год. Один из самых популярных альбомов группы.",
		Price:       4800.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=adc39d2c7349658f8a09a2bc9bf6bcda2808e91c-4238413-images-thumbs&n=13",
	},
	{
		ID:          37,
		Title:       "Группа крови",
		ArtistID:    17,
		Description: "Культовый альбом группы Кино, СССР, 1988 год. Легендарная пластинка советского рока.",
		Price:       5500.0,
		CoverURL:    "https://shop-zrec.ru/wp-content/uploads/2023/01/6535892210.jpg",
	},
	{
		ID:          38,
		Title:       "Аквариум",
		ArtistID:    16,
		Description: "Ранний альбом группы Аквариум, СССР, 1981 год. Редкая коллекционная пластинка.",
		Price:       4200.0,
		CoverURL:    "https://is1-ssl.mzstatic.com/image/thumb/Music126/v4/e7/88/bc/e788bc4c-810a-bd24-cc0b-498f7520fc7a/cover.jpg/1380x1380bb.webp",
	},
	{
		ID:          39,
		Title:       "Дети Гор",
		ArtistID:    16,
		Description: "Альбом группы Аквариум, СССР, 1985 год. Классика советского рока.",
		Price:       3800.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=0189d310ade02fd058a4cd02da346e73ea121f32-5292008-images-thumbs&n=13",
	},
	{
		ID:          40,
		Title:       "Радио Африка",
		ArtistID:    16,
		Description: "Альбом группы Аквариум, СССР, 1983 год. Редкая пластинка в хорошем состоянии.",
		Price:       4000.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=15128ee64b0c58116fdfc8f7d14c9ffd050cb345-10385132-images-thumbs&n=13",
	},
	{
		ID:          41,
		Title:       "Время Любить",
		ArtistID:    18,
		Description: "Альбом группы ДДТ, СССР, 1987 год. Классика советского рока.",
		Price:       3600.0,
		CoverURL:    "https://avatars.mds.yandex.net/i?id=13335a5385122e20c8addced7d009e5b57112aad-10574297-images-thumbs&n=13",
	},
	{
		ID:          42,
		Title:       "Я получил эту роль",
		ArtistID:    18,
		Description: "Альбом группы ДДТ, СССР, 1987 год. Редкая пластинка.",
		Price:       3900.0,
		CoverURL:    "https://avatars.dzeninfra.ru/get-zen_doc/9662522/pub_6437cc9033a671351e2bec76_6437f73fe9b3ec6cf29fdd21/scale_1200",
	},
}

var defaultCategories = []models.Category{
	{ID: 1, Name: "Рок"},
	{ID: 2, Name: "Поп"},
	{ID: 3, Name: "Прогрессив-рок"},
	{ID: 4, Name: "Классический рок"},
}

// record id -> category ids
var defaultRecordCategories = map[uint][]uint{
	1:  {1, 2},
	5:  {3, 4},
	8:  {1, 4},
	10: {1, 2},
}
