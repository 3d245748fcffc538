package venues

import "github.com/tubone24/eiga-miyou/internal/model"

// seedMappings is the reference venue table for the three supported chains.
// Toho site codes are theater codes of the schedule API; cinema109 codes are
// "slug:theaterCode" for the schedule page URL and its theater_code query.
var seedMappings = []model.VenueSiteMapping{
	// Aeon Cinema
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ板橋", SiteCode: "itabashi", SiteURL: "https://www.aeoncinema.com/cinema2/itabashi/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ東雲", SiteCode: "shinonome", SiteURL: "https://www.aeoncinema.com/cinema2/shinonome/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ シアタス調布", SiteCode: "chofu", SiteURL: "https://www.aeoncinema.com/cinema2/chofu/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ多摩センター", SiteCode: "tamacenter", SiteURL: "https://www.aeoncinema.com/cinema2/tamacenter/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ越谷レイクタウン", SiteCode: "koshigaya", SiteURL: "https://www.aeoncinema.com/cinema2/koshigaya/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ幕張新都心", SiteCode: "makuhari", SiteURL: "https://www.aeoncinema.com/cinema2/makuhari/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ海老名", SiteCode: "ebina", SiteURL: "https://www.aeoncinema.com/cinema2/ebina/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ大宮", SiteCode: "omiya", SiteURL: "https://www.aeoncinema.com/cinema2/omiya/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ座間", SiteCode: "zama", SiteURL: "https://www.aeoncinema.com/cinema2/zama/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマむさし村山", SiteCode: "musashimurayama", SiteURL: "https://www.aeoncinema.com/cinema2/musashimurayama/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ日の出", SiteCode: "hinode", SiteURL: "https://www.aeoncinema.com/cinema2/hinode/movie/"},
	{Provider: model.ProviderAeon, VenueName: "イオンシネマ港北ニュータウン", SiteCode: "kohoku", SiteURL: "https://www.aeoncinema.com/cinema2/kohoku/movie/"},

	// 109 Cinemas
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ二子玉川", SiteCode: "futakotamagawa:T1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ川崎", SiteCode: "kawasaki:I1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ木場", SiteCode: "kiba:20"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズグランベリーパーク", SiteCode: "granberrypark:G1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ湘南", SiteCode: "shonan:R1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズプレミアム新宿", SiteCode: "premiumshinjuku:"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ名古屋", SiteCode: "nagoya:A1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ大阪エキスポシティ", SiteCode: "expocity:E1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ箕面", SiteCode: "minoh:M1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ佐野", SiteCode: "sano:N1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ菖蒲", SiteCode: "shobu:S1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ四日市", SiteCode: "yokkaichi:Y1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ広島", SiteCode: "hiroshima:H1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ富谷", SiteCode: "tomiya:J1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ港北", SiteCode: "kohoku:K1"},
	{Provider: model.ProviderCinema109, VenueName: "109シネマズ HAT神戸", SiteCode: "kobe:B1"},

	// TOHO Cinemas
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ新宿", SiteCode: "076"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ渋谷", SiteCode: "043"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ日比谷", SiteCode: "081"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ日本橋", SiteCode: "073"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ六本木ヒルズ", SiteCode: "009"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ池袋", SiteCode: "084"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ上野", SiteCode: "080"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ府中", SiteCode: "012"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ立川立飛", SiteCode: "082"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ南大沢", SiteCode: "048"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ海老名", SiteCode: "023"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ川崎", SiteCode: "018"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズららぽーと横浜", SiteCode: "060"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズららぽーと船橋", SiteCode: "047"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ流山おおたかの森", SiteCode: "056"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズ柏", SiteCode: "034"},
	{Provider: model.ProviderToho, VenueName: "TOHOシネマズさいたま新都心", SiteCode: "077"},
}
