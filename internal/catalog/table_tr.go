package catalog

// turkishTable holds the authored Turkish seed phrases and templates.
var turkishTable = Table{
	Language: Turkish,
	TitleTemplates: [TemplateCount]string{
		"%s - Son 5 Yıl",
		"%s - 2025/2026 Trendleri",
		"%s - Fırsatlar ve Riskler",
		"%s - Günlük Yaşama Etkisi",
		"%s - Yakın Gelecek",
	},
	SummaryTemplates: [TemplateCount]string{
		"%s son 5 yılda nasıl değişti ve neden?",
		"%s için 2025/2026 döneminde öne çıkan eğilimler neler?",
		"%s alanında fırsatlar ve riskler neler?",
		"%s günlük yaşamı ve alışkanlıkları nasıl etkiliyor?",
		"%s önümüzdeki 3 yılda nereye evrilebilir?",
	},
	Categories: []CategorySeed{
		{Name: "Teknoloji", Phrases: []string{
			"AI Ajanları",
			"Yapay Zeka Etiği",
			"Büyük Dil Modelleri",
			"Cihaz Üstü Yapay Zeka",
			"Siber Güvenlikte AI",
			"Kuantum Hesaplama",
			"5G ve 6G Ağları",
			"IoT ve Akıllı Evler",
			"Bulut Yerel Mimari",
			"Sıfır Güven Yaklaşımı",
			"Veri Gizliliği",
			"Dijital Kimlik",
			"Blokzincir Kullanım Alanları",
			"AR ve VR Deneyimleri",
			"Otomasyon ve RPA",
			"Enerji Verimli Yazılım",
			"Yeşil Veri Merkezleri",
			"Açık Kaynak Güvenliği",
			"Fintech Yenilikleri",
			"Robotik ve Cobotlar",
		}},
		{Name: "Sosyal", Phrases: []string{
			"Sosyal Medya Algoritmaları",
			"Dijital Detoks",
			"Online Topluluklar",
			"Yalnızlık ve Aidiyet",
			"Gen Z İletişimi",
			"Aile İçi İletişim",
			"Sosyal Medya Güvenliği",
			"Dezenformasyonla Mücadele",
			"Mahremiyet ve Paylaşım",
			"Dijital Nezaket",
			"Çevrimiçi Gönüllülük",
			"Şehir Yaşamı",
			"İş-Yaşam Dengesi",
			"Göç ve Uyum",
			"Toplumsal Cinsiyet Eşitliği",
			"Dijital Vatandaşlık",
			"Krizde Dayanışma",
			"Influencer Ekonomisi",
			"Topluluk Temelli Öğrenme",
			"Yerel Kültürlerin Korunması",
		}},
		{Name: "Bilim", Phrases: []string{
			"İklim Modellemesi",
			"Uzay Keşifleri",
			"Mars Görevleri",
			"Gen Düzenleme",
			"Biyoteknoloji",
			"Nörobilim",
			"Kuantum Fiziği",
			"Karanlık Madde",
			"Yenilenebilir Enerji Teknolojileri",
			"Batarya Kimyası",
			"Okyanus Araştırmaları",
			"Pandemi Hazırlığı",
			"Aşı Teknolojileri",
			"Yapay Organlar",
			"Malzeme Bilimi",
			"Nanoteknoloji",
			"Astrobiyoloji",
			"Bilim İletişimi",
			"Açık Veri Bilimi",
			"Bilimsel Etik",
		}},
		{Name: "Sanat", Phrases: []string{
			"Dijital Sanat",
			"Yapay Zeka ile Sanat",
			"Sokak Sanatı",
			"Modern Resim",
			"Çağdaş Heykel",
			"Fotoğrafçılık Trendleri",
			"Tipografi ve Grafik",
			"İllüstrasyon",
			"Performans Sanatı",
			"Müzelerde Dijital Deneyim",
			"Sanat Terapisi",
			"Yerel Kültür ve Sanat",
			"Minimalizm",
			"Renk Teorisi",
			"Sanatta Sürdürülebilirlik",
			"Kamusal Sanat",
			"Sanat Koleksiyonculuğu",
			"Tasarım Düşüncesi",
			"Geleneksel El Sanatları",
			"Sanat Eğitimi",
		}},
		{Name: "Spor", Phrases: []string{
			"Futbolda Taktikler",
			"Basketbolda Veri Analitiği",
			"E-Spor Ekosistemi",
			"Antrenman Bilimi",
			"Spor Beslenmesi",
			"Sakatlık Önleme",
			"Spor Psikolojisi",
			"Performans Teknolojileri",
			"Amatör Spor Kültürü",
			"Kadın Sporları",
			"Spor ve Sürdürülebilirlik",
			"Koşu ve Maraton",
			"Yüzme Teknikleri",
			"Fitness Trendleri",
			"Genç Sporcular",
			"VAR ve Hakem Teknolojileri",
			"Spor Pazarlaması",
			"Takım Dinamikleri",
			"Recovery ve Uyku",
			"Outdoor Sporlar",
		}},
		{Name: "Müzik", Phrases: []string{
			"Streaming Ekonomisi",
			"Kısa Video ve Müzik Keşfi",
			"Yapay Zeka ile Üretim",
			"Canlı Performans Deneyimi",
			"Bağımsız Sanatçılar",
			"Telif ve Hak Yönetimi",
			"Lo-fi ve Ambient Akımlar",
			"Hip-Hop Evrimi",
			"Elektronik Müzik Sahnesi",
			"Dünya Müziği",
			"Konser Deneyimi",
			"Ev Stüdyo Kurulumu",
			"Mix ve Master Teknikleri",
			"Dizi ve Film Müzikleri",
			"Marka İşbirlikleri",
			"Playlist Stratejileri",
			"Müzik ve Oyun",
			"Müzik Terapisi",
			"Vokal Teknikleri",
			"Enstrüman Öğrenme",
		}},
		{Name: "Film", Phrases: []string{
			"Streaming Platform Stratejileri",
			"Sinema ve Dijital Yayın",
			"Kısa Film Anlatısı",
			"Belgesel Trendleri",
			"Yapay Zeka ve VFX",
			"Senaryo Yazımı",
			"Karakter Derinliği",
			"Sinematografi",
			"Dizi Anlatısı",
			"Franchise ve Devam Filmleri",
			"Bağımsız Sinema",
			"Festival Kültürü",
			"Türkiye Sineması",
			"Animasyon Teknikleri",
			"Yapım Bütçeleri",
			"Seyirci Alışkanlıkları",
			"Sinema Pazarlaması",
			"Çeşitlilik ve Temsil",
			"Gerçek Hikaye Uyarlamaları",
			"Film Eleştirisi",
		}},
		{Name: "Kitap", Phrases: []string{
			"E-Kitap ve Basılı Kitap",
			"Sesli Kitap Trendleri",
			"Kısa Form Okuma",
			"Fantastik Edebiyat",
			"Bilim Kurgu",
			"Polisiye ve Gerilim",
			"Kişisel Gelişim",
			"Güncel Nonfiction",
			"Çeviri Edebiyat",
			"Genç Yetişkin",
			"Okuma Alışkanlıkları",
			"Yazarların Dijital Varlığı",
			"Kitap Kulüpleri",
			"Sansür ve Özgürlük",
			"Edebiyatta Yapay Zeka",
			"Klasiklerin Yeniden Okunması",
			"Çocuk Edebiyatı",
			"Grafik Roman",
			"Yayıncılıkta Sürdürülebilirlik",
			"Kapak Tasarımı",
		}},
		{Name: "Yemek", Phrases: []string{
			"Sağlıklı Beslenme",
			"Bitki Bazlı Mutfak",
			"Fermentasyon",
			"Yerel Mutfaklar",
			"Sıfır Atık Mutfak",
			"Hızlı ve Pratik Tarifler",
			"Kahve Kültürü",
			"Çay Kültürü",
			"Sokak Lezzetleri",
			"Ev Yapımı Ekmek",
			"Baharatlar ve Aroma",
			"Mevsimsel Beslenme",
			"Dengeli Beslenme Alışkanlıkları",
			"Gıda Güvenliği",
			"Yemek Fotoğrafçılığı",
			"Fine Dining Deneyimi",
			"Vegan Tatlılar",
			"Çocuklar için Beslenme",
			"Gurme Atıştırmalıklar",
			"Yemek Planlama",
		}},
		{Name: "Seyahat", Phrases: []string{
			"Sürdürülebilir Turizm",
			"Dijital Göçebelik",
			"Uygun Bütçeli Seyahat",
			"Yavaş Seyahat",
			"Kültürel Deneyimler",
			"Doğa Rotaları",
			"Şehir Kaçamakları",
			"Gastronomi Turları",
			"Güvenli Seyahat",
			"Vize ve Planlama",
			"Aile ile Seyahat",
			"Solo Seyahat",
			"Yerel Halkla Etkileşim",
			"Tren Yolculukları",
			"Karavan ve Kamp",
			"Kış ve Kayak Rotaları",
			"Deniz Tatilleri",
			"Fotoğraf Rotaları",
			"Seyahat Teknolojileri",
			"Acil Durum Hazırlığı",
		}},
		{Name: "Moda", Phrases: []string{
			"Sürdürülebilir Moda",
			"İkinci El ve Yeniden Kullanım",
			"Kapsül Gardırop",
			"Sokak Modası",
			"Minimalist Stil",
			"Renk Trendleri",
			"Aksesuar Seçimi",
			"Athleisure",
			"Teknolojik Kumaşlar",
			"Yerli Tasarımcılar",
			"Moda ve Kültür",
			"Moda Haftaları",
			"Styling İpuçları",
			"Beden Çeşitliliği",
			"Etik Üretim",
			"Vintage Akımı",
			"Unisex Moda",
			"Hızlı Modanın Etkileri",
			"Upcycle ve Dönüşüm",
			"İş Giyimi",
		}},
		{Name: "Sağlık", Phrases: []string{
			"Zihinsel Sağlık",
			"Uyku Hijyeni",
			"Beslenme ve Sağlık",
			"Düzenli Egzersiz",
			"Bağışıklık Desteği",
			"Tele-Sağlık",
			"Dijital Sağlık Uygulamaları",
			"Stres Yönetimi",
			"Mindfulness",
			"Kronik Hastalık Yönetimi",
			"Sağlık Okuryazarlığı",
			"Kadın Sağlığı",
			"Erkek Sağlığı",
			"Çocuk Sağlığı",
			"Yaşlı Sağlığı",
			"Sağlıklı Yaşlanma",
			"Giyilebilir Cihazlar",
			"Sağlıkta Veri Gizliliği",
			"İlk Yardım Bilinci",
			"Koruyucu Sağlık",
		}},
		{Name: "Eğitim", Phrases: []string{
			"Hibrit Eğitim",
			"Yapay Zeka Destekli Öğrenme",
			"Mikro Öğrenme",
			"Yaşam Boyu Öğrenme",
			"Eğitimde Oyunlaştırma",
			"Uzaktan Değerlendirme",
			"Öğretmen Destek Araçları",
			"Yabancı Dil Öğrenme",
			"STEM Eğitim",
			"Kodlama Okuryazarlığı",
			"Eleştirel Düşünme",
			"Medya Okuryazarlığı",
			"Proje Tabanlı Öğrenme",
			"Kariyer Yönlendirme",
			"Mesleki Eğitim",
			"Özel Eğitim",
			"Erişilebilir Eğitim",
			"Eğitimde Eşitlik",
			"Sınav Kaygısı",
			"Öğrenme Alışkanlıkları",
		}},
		{Name: "Çevre", Phrases: []string{
			"İklim Değişikliği Çözümleri",
			"Yenilenebilir Enerji",
			"Karbon Ayak İzi",
			"Döngüsel Ekonomi",
			"Atık Yönetimi",
			"Plastik Azaltma",
			"Su Tasarrufu",
			"Biyoçeşitlilik",
			"Yeşil Şehirler",
			"Toplu Taşıma",
			"Orman Koruma",
			"Sürdürülebilir Tarım",
			"Deniz Kirliliği",
			"Hava Kalitesi",
			"İklim Adaleti",
			"Yeşil Teknoloji",
			"Enerji Verimliliği",
			"Sıfır Atık Yaşam",
			"Ekoturizm",
			"Doğa Restorasyonu",
		}},
		{Name: "İş Hayatı", Phrases: []string{
			"Uzaktan Çalışma",
			"Hibrit Kültür",
			"Performans Ölçümü",
			"Liderlik Becerileri",
			"Takım İletişimi",
			"Çalışan Deneyimi",
			"İş-Yaşam Dengesi",
			"Kariyer Planlama",
			"Upskilling ve Reskilling",
			"İK Analitiği",
			"Agile Çalışma",
			"Proje Yönetimi",
			"Startup Ekosistemi",
			"Finansal Okuryazarlık",
			"Girişimcilik",
			"Satış Stratejileri",
			"Pazarlama Trendleri",
			"Müşteri Deneyimi",
			"İş Etiği",
			"İş Güvenliği",
		}},
	},
}
