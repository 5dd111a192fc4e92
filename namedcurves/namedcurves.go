// Package namedcurves is the external-data registry of standard curves
// (§2 item 7, §6, §12): a name resolves to domain parameters (E, G, n),
// exactly as ranea/ccepy's own listado_curvas_elipticas ships them. The
// spec calls these parameters external data — not to be re-derived — so
// every literal value here is copied from that source, not computed.
package namedcurves

import (
	"math/big"

	"github.com/ranea-labs/ecc-toolkit/curve"
	"github.com/ranea-labs/ecc-toolkit/fq"
)

// DomainParameters bundles a curve, its generator, and the generator's
// order, the same (E, P, n) triple ccepy's parametros_dominio returns.
type DomainParameters struct {
	Name  string
	Field *fq.Field
	Curve *curve.Weierstrass[fq.Element]
	G     curve.Point[fq.Element]
	N     *big.Int
}

type rawParams struct {
	name    string
	p       string
	a       string
	b       string
	x1      string
	y1      string
	order   string
}

// table mirrors curvas_eliptipcas_sobre_Fq_famosas verbatim, in decimal.
var table = []rawParams{
	{
		name:  "Anomalous",
		p:     "17676318486848893030961583018778670610489016512983351739677143",
		a:     "15347898055371580590890576721314318823207531963035637503096292",
		b:     "7444386449934505970367865204569124728350661870959593404279615",
		x1:    "1619092589586542907492569170434842128165755668543894279235270",
		y1:    "3436949547626524920645513316569700140535482973634182925459687",
		order: "17676318486848893030961583018778670610489016512983351739677143",
	},
	{
		name:  "NIST P-224",
		p:     "26959946667150639794667015087019630673557916260026308143510066298881",
		a:     "-3",
		b:     "18958286285566608000408668544493926415504680968679321075787234672564",
		x1:    "19277929113566293071110308034699488026831934219452440156649784352033",
		y1:    "19926808758034470970197974370888749184205991990603949537637343198772",
		order: "26959946667150639794667015087019625940457807714424391721682722368061",
	},
	{
		name:  "BN(2,254)",
		p:     "16798108731015832284940804142231733909889187121439069848933715426072753864723",
		a:     "0",
		b:     "2",
		x1:    "-1",
		y1:    "1",
		order: "16798108731015832284940804142231733909759579603404752749028378864165570215949",
	},
	{
		name:  "brainpoolP256t1",
		p:     "76884956397045344220809746629001649093037950200943055203735601445031516197751",
		a:     "-3",
		b:     "46214326585032579593829631435610129746736367449296220983687490401182983727876",
		x1:    "74138526386500101787937404544159543470173440588427591213843535686338908194292",
		y1:    "20625154686056605250529482107801269759951443923312408063441227608803066104254",
		order: "76884956397045344220809746629001649092737531784414529538755519063063536359079",
	},
	{
		name:  "ANSSI FRP256v1",
		p:     "109454571331697278617670725030735128145969349647868738157201323556196022393859",
		a:     "-3",
		b:     "107744541122042688792155207242782455150382764043089114141096634497567301547839",
		x1:    "82638672503301278923015998535776227331280144783487139112686874194432446389503",
		y1:    "43992510890276411535679659957604584722077886330284298232193264058442323471611",
		order: "109454571331697278617670725030735128146004546811402412653072203207726079563233",
	},
	{
		name:  "NIST P-256",
		p:     "115792089210356248762697446949407573530086143415290314195533631308867097853951",
		a:     "-3",
		b:     "41058363725152142129326129780047268409114441015993725554835256314039467401291",
		x1:    "48439561293906451759052585252797914202762949526041747995844080717082404635286",
		y1:    "36134250956749795798585127919587881956611106672985015071877198253568414405109",
		order: "115792089210356248762697446949407573529996955224135760342422259061068512044369",
	},
	{
		name:  "secp256k1",
		p:     "115792089237316195423570985008687907853269984665640564039457584007908834671663",
		a:     "0",
		b:     "7",
		x1:    "55066263022277343669578718895168534326250603453777594175500187360389116729240",
		y1:    "32670510020758816978083085130507043184471273380659243275938904335757337482424",
		order: "115792089237316195423570985008687907852837564279074904382605163141518161494337",
	},
	{
		name:  "brainpoolP384t1",
		p:     "21659270770119316173069236842332604979796116387017648600081618503821089934025961822236561982844534088440708417973331",
		a:     "-3",
		b:     "19596161053329239268181228455226581162286252326261019516900162717091837027531392576647644262320816848087868142547438",
		x1:    "3827769047710394604076870463731979903132904572714069494181204655675960538951736634566672590576020545838501853661388",
		y1:    "5797643717699939326787282953388004860198302425468870641753455602553471777319089854136002629714659021021358409132328",
		order: "21659270770119316173069236842332604979796116387017648600075645274821611501358515537962695117368903252229601718723941",
	},
	{
		name:  "NIST P-384",
		p:     "39402006196394479212279040100143613805079739270465446667948293404245721771496870329047266088258938001861606973112319",
		a:     "-3",
		b:     "27580193559959705877849011840389048093056905856361568521428707301988689241309860865136260764883745107765439761230575",
		x1:    "26247035095799689268623156744566981891852923491109213387815615900925518854738050089022388053975719786650872476732087",
		y1:    "8325710961489029985546751289520108179287853048861315594709205902480503199884419224438643760392947333078086511627871",
		order: "39402006196394479212279040100143613805079739270465446667946905279627659399113263569398956308152294913554433653942643",
	},
}

func mustBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("namedcurves: malformed literal: " + s)
	}
	return n
}

// registry holds only the entries that passed construction and the
// n·G = O check. An entry whose literal parameters fail validation is
// simply absent from the registry, matching parametros_dominio's own
// "devuelve None si no existe" contract (§12): a bad parameter set doesn't
// crash the whole registry, it behaves exactly as if the name weren't
// listed.
var registry = map[string]*DomainParameters{}

func init() {
	for _, raw := range table {
		params, ok := build(raw)
		if !ok {
			continue
		}
		registry[raw.name] = params
	}
}

func build(raw rawParams) (*DomainParameters, bool) {
	p := mustBigInt(raw.p)
	field := fq.NewPrimeField(p)

	a := field.FromInt(mustBigInt(raw.a))
	b := field.FromInt(mustBigInt(raw.b))
	c, err := curve.NewWeierstrass[fq.Element](a, b)
	if err != nil {
		return nil, false
	}

	x := field.FromInt(mustBigInt(raw.x1))
	y := field.FromInt(mustBigInt(raw.y1))
	g, err := c.NewPoint(x, y)
	if err != nil {
		return nil, false
	}

	n := mustBigInt(raw.order)
	if !c.ScalarMul(g, n).IsIdentity() {
		return nil, false
	}

	return &DomainParameters{Name: raw.name, Field: field, Curve: c, G: g, N: n}, true
}

// Names lists every curve name the table carries, regardless of whether
// validation placed it in the registry — useful for diagnosing a name
// that resolves to "absent".
func Names() []string {
	names := make([]string, len(table))
	for i, raw := range table {
		names[i] = raw.name
	}
	return names
}

// DomainParametersByName returns the named curve's domain parameters, or
// (nil, false) if no validated entry exists under that name (§2 item 7).
func DomainParametersByName(name string) (*DomainParameters, bool) {
	params, ok := registry[name]
	return params, ok
}
