/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package exaloglog

// mlBiasCorrectionConstants holds the first order bias of the maximum-likelihood
// estimator for each (t, d) pair. The estimate is divided by 1 + c/m.
var mlBiasCorrectionConstants = [][]float64{
	// t = 0
	{
		1.0101590809585401, 0.6574064986454711, 0.4814737652772006, 0.39419282669656414, 0.35089447879078073,
		0.32936465981277996, 0.31863495879653597, 0.3132796686731959, 0.310604514513206, 0.3092675731555137,
		0.30859926305726254, 0.3082651483611468, 0.3080981011274253, 0.30801458004241555, 0.3079728201332821,
		0.3079519403371093, 0.3079415004786278, 0.30793628055928907, 0.30793367060209526, 0.3079323656241174,
		0.30793171313528306, 0.30793138689090466, 0.30793122376872517, 0.30793114220763784, 0.3079311014270947,
		0.3079310810368233, 0.30793107084168764, 0.30793106574411994, 0.3079310631953359, 0.307931061920944,
		0.307931061283748, 0.30793106096515, 0.30793106080585103, 0.3079310607262015, 0.3079310606863768,
		0.30793106066646436, 0.30793106065650816, 0.3079310606515302, 0.3079310606490411, 0.3079310606477965,
		0.30793106064717435, 0.30793106064686315, 0.3079310606467076, 0.30793106064662984, 0.3079310606465909,
		0.30793106064657155, 0.3079310606465617, 0.3079310606465569, 0.30793106064655434, 0.3079310606465532,
		0.30793106064655257, 0.30793106064655235, 0.3079310606465521, 0.30793106064655207, 0.307931060646552,
		0.307931060646552, 0.307931060646552, 0.307931060646552, 0.307931060646552,
	},
	// t = 1
	{
		1.0008872152347768, 0.7535432119395638, 0.5779922482607895, 0.45345476873253704, 0.36524045688604806,
		0.30288772510110057, 0.25890336930926383, 0.2279182490676776, 0.20610244784990153, 0.19074089378272707,
		0.17991875444163988, 0.17228968432095998, 0.16690809112853047, 0.16310971904232568, 0.1604275472429718,
		0.15853287628721133, 0.1571941223746893, 0.1562479799300827, 0.15557920923487562, 0.1551064446351861,
		0.15477221384540174, 0.15453590926816946, 0.15436883289220926, 0.15425070016897732, 0.1541671717835069,
		0.15410811033016417, 0.1540663485940499, 0.15403681909656816, 0.15401593884341677, 0.1540011744022388,
		0.15399073442948347, 0.15398335228581841, 0.15397813233790758, 0.1539744412853102, 0.15397183132097297,
		0.15396998579948357, 0.15396868081971968, 0.15396775806017737, 0.15396710557089663, 0.15396664419142608,
		0.15396631794693605, 0.15396608725727587, 0.15396592413506843, 0.15396580879025717, 0.15396572722916285,
		0.1539656695567619, 0.15396562877621706, 0.1539655999400178, 0.15396557954974596, 0.1539655651316466,
		0.15396555493651085, 0.1539655477274612, 0.1539655426298934, 0.15396553902536864, 0.15396553647658465,
		0.1539655346743223, 0.15396553339993033, 0.15396553249879918,
	},
	// t = 2
	{
		1.0000622933078316, 0.853954726990373, 0.7309857307864877, 0.6274683312575396, 0.5403052852252049,
		0.4668961218056206, 0.40505866032132765, 0.35296248898723803, 0.30907237397400106, 0.2721000490382485,
		0.24096326105437182, 0.2147512500579578, 0.19269598704624138, 0.1741485011252804, 0.15855957138424717,
		0.14546401855336083, 0.1344678561743202, 0.12523765453607028, 0.11749160485613995, 0.1109919098173392,
		0.1055382430717344, 0.10096210383770002, 0.09712194493314383, 0.09389898147950877, 0.09119360205952269,
		0.0889223114724498, 0.08701513896044305, 0.08541345020877447, 0.08406810639739679, 0.0829379191465598,
		0.08198835607360878, 0.08119045752259443, 0.08051993056768486, 0.07995639144859475, 0.0794827320848809,
		0.07908459021739991, 0.0787499060648309, 0.07846855121070932, 0.07823201781223714, 0.07803315820824427,
		0.07786596665871104, 0.07772539632492277, 0.07760720574354611, 0.07750782999885662, 0.07742427258796858,
		0.07735401463170537, 0.07729493863148887, 0.07724526442915791, 0.07720349540750208, 0.07716837328734204,
		0.07713884014280344, 0.07711400647876558, 0.07709312440056891, 0.07707556506193702, 0.0770607997076996,
		0.07704838373742592, 0.07703794330795102,
	},
	// t = 3
	{
		1.0000040238681391, 0.9204987904254643, 0.8475836592095825, 0.7807110942115162, 0.7193789855218202,
		0.6631268838856161, 0.6115325490668425, 0.564208786114451, 0.5208005457444386, 0.4809822669778771,
		0.44445544191931446, 0.4109463841348843, 0.3802041835091501, 0.351998831740018, 0.326119503790838,
		0.3023729816801102, 0.28058220797713596, 0.26058495731327963, 0.24223261513950523, 0.22538905388383876,
		0.20992959760207305, 0.19574006717487097, 0.182715899074449, 0.17076133168065857, 0.15978865403486922,
		0.14971751274009065, 0.14047427340789417, 0.1319914335862557, 0.12420708446178991, 0.11706441881797965,
		0.11051128276973969, 0.10449976872115585, 0.0989858468539736, 0.09392903229774889, 0.08929208500174567,
		0.0850407392563939, 0.08114345981765922, 0.07757122167649295, 0.07429731068114112, 0.07129714244734373,
		0.06854809726034522, 0.06602936896195193, 0.06372182610607409, 0.06160788394135549, 0.059671386028234547,
		0.05789749451333547, 0.05627258826382309, 0.05478416820891765, 0.05342076934810767, 0.052171878970066955,
		0.05102786068781953, 0.049979883939259104, 0.04901985863228225, 0.04814037463446697, 0.047334645821637024,
		0.04659645841027938,
	},
	// t = 4
	{
		1.0000002536533872, 0.9585085176365462, 0.9187753280286737, 0.8807261054085848, 0.8442894314848284,
		0.8093969150597715, 0.7759830636776743, 0.7439851607160006, 0.7133431476894437, 0.6839995115459382,
		0.6558991767433205, 0.6289894019042789, 0.6032196808558454, 0.5785416478679315, 0.5549089869132839,
		0.5322773447788277, 0.510604247865566, 0.4898490225211731, 0.46997271875603003, 0.450938037199815,
		0.43270925916184194, 0.4152521796641586, 0.3985340433219838, 0.38252348295138977, 0.36719046078922823,
		0.35250621221516365, 0.3384431918703294, 0.32497502207155976, 0.31207644342438984, 0.2997232675420524,
		0.2878923317815529, 0.2765614559115674, 0.265709400630401, 0.255315827855554, 0.2453612627095983,
		0.23582705713005742, 0.2266953550338219, 0.21794905896932637, 0.2095717981922721, 0.20154789810310947,
		0.19386235098680218, 0.18650078799760128, 0.17944945233365694, 0.17269517354832264, 0.16622534294694613,
		0.16002789001983816, 0.15409125986394634, 0.14840439154757765, 0.14295669737430333, 0.13773804300396458,
		0.13273872839048975, 0.12794946949803354, 0.12336138075877208, 0.11896595823753296, 0.11475506347030663,
	},
	// t = 5
	{
		1.00000001588763, 0.9788024681455747, 0.9580591039586602, 0.9377601903482514, 0.9178962028781064,
		0.8984578211854727, 0.8794359246079413, 0.8608215879040063, 0.8426060770653196, 0.8247808452186803,
		0.8073375286158303, 0.7902679427091823, 0.7735640783116295, 0.757218097838645, 0.7412223316309017,
		0.7255692743556881, 0.7102515814854349, 0.6952620658516966, 0.6805936942729738, 0.6662395842547928,
		0.6521930007604948, 0.6384473530512225, 0.6249961915936146, 0.611833205033767, 0.5989522172360323,
		0.5863471843852751, 0.5740121921512206, 0.5619414529135647, 0.5501293030465504, 0.5385702002617291,
		0.527258721007664, 0.5161895579253581, 0.5053575173582091, 0.494757516915325, 0.48438458308705856,
		0.4742338489116421, 0.4643005516918252, 0.45458003076045006, 0.44506772529391014, 0.43575917217247434,
		0.42665000388646407, 0.4177359464873109, 0.4090128175825265, 0.40047652437364994, 0.39212306173624895,
		0.38394851034107663, 0.3759490348155029, 0.36812088194435855, 0.36046037890934735, 0.3529639315662025,
		0.3456280227587804, 0.33844921066929784, 0.3314241272039451, 0.32454947641311327,
	},
	// t = 6
	{
		1.0000000009935146, 0.9892861356619387, 0.9786876776673491, 0.9682033838190587, 0.9578320243177585,
		0.9475723826112631, 0.93742325525181, 0.927383451754897, 0.917451794459641, 0.9076271183906348,
		0.8979082711213016, 0.8882941126387138, 0.8787835152098722, 0.8693753632494217, 0.8600685531887966,
		0.850861993346772, 0.8417546038014113, 0.8327453162633912, 0.8238330739506947, 0.8150168314646482,
		0.8062955546673015, 0.7976682205601214, 0.7891338171639962, 0.780691343400532, 0.7723398089746268,
		0.7640782342583099, 0.755905650175832, 0.747821098089996, 0.7398236296897075, 0.7319123068787402,
		0.7240862016656983, 0.7163443960551633, 0.7086859819400156, 0.7011100609949144, 0.693615744570923,
		0.6862021535912749, 0.6788684184482572, 0.6716136789012066, 0.6644370839756045, 0.6573377918632602,
		0.6503149698235657, 0.6433677940858175, 0.6364954497525895, 0.6296971307041473, 0.6229720395038889,
		0.6163193873048104, 0.6097383937569721, 0.603228286915966, 0.5967883031523683, 0.5904176870621656,
		0.5841156913781488, 0.577881576882258, 0.5717146123188752,
	},
	// t = 7
	{
		1.000000000062103, 0.994614019750602, 0.9892571266949818, 0.9839291638065226, 0.9786299748448695,
		0.9733594044134514, 0.9681172979549243, 0.9629035017466391, 0.9577178628961321, 0.9525602293366446,
		0.9474304498226608, 0.9423283739254735, 0.9372538520287738, 0.9322067353242619, 0.9271868758072852,
		0.9221941262724968, 0.9172283403095381, 0.9122893722987484, 0.9073770774068914, 0.9024913115829097,
		0.8976319315537005, 0.8927987948199128, 0.887991759651771, 0.8832106850849172, 0.8784554309162765,
		0.8737258576999491, 0.8690218267431168, 0.8643432001019788, 0.8596898405777063, 0.8550616117124169,
		0.8504583777851764, 0.8458800038080168, 0.8413263555219772, 0.8367972993931692, 0.8322927026088583,
		0.8278124330735713, 0.8233563594052217, 0.8189243509312569, 0.8145162776848265, 0.8101320104009718,
		0.8057714205128337, 0.8014343801478834, 0.7971207621241726, 0.7928304399466036, 0.7885632878032206,
		0.7843191805615195, 0.7800979937647788, 0.7758996036284096, 0.7717238870363267, 0.7675707215373367,
		0.7634399853415484, 0.7593315573168018,
	},
	// t = 8
	{
		1.0000000000038813, 0.9972997133909421, 0.9946067281926129, 0.9919210246662531, 0.9892425831226062,
		0.9865713839256539, 0.9839074074924731, 0.98125063429309, 0.9786010448503416, 0.9759586197397268,
		0.9733233395892699, 0.9706951850793737, 0.9680741369426819, 0.9654601759639341, 0.9628532829798291,
		0.9602534388788798, 0.9576606246012764, 0.9550748211387471, 0.9524960095344147, 0.9499241708826619,
		0.947359286328991, 0.9448013370698852, 0.9422503043526718, 0.9397061694753838, 0.9371689137866229,
		0.9346385186854241, 0.932114965621118, 0.9295982360931943, 0.927088311651167, 0.9245851738944408,
		0.9220888044721726, 0.9195991850831396, 0.9171162974756042, 0.9146401234471815, 0.9121706448447036,
		0.9097078435640871, 0.9072517015502021, 0.9048022007967392, 0.9023593233460749, 0.8999230512891444,
		0.8974933667653067, 0.8950702519622146, 0.8926536891156847, 0.8902436605095676, 0.8878401484756162,
		0.8854431353933587, 0.8830526036899663, 0.8806685358401268, 0.8782909143659163, 0.8759197218366683,
		0.8735549408688495,
	},
	// t = 9
	{
		1.0000000000002425, 0.9986480282491881, 0.9972978855627285, 0.9959495694663439, 0.9946030774888645,
		0.9932584071624618, 0.9919155560226475, 0.990574521608266, 0.9892353014614924, 0.9878978931278267,
		0.9865622941560898, 0.9852285020984181, 0.9838965145102604, 0.9825663289503722, 0.9812379429808121,
		0.9799113541669363, 0.9785865600773961, 0.9772635582841305, 0.975942346362365, 0.974622921890604,
		0.9733052824506285, 0.9719894256274926, 0.9706753490095145, 0.9693630501882781, 0.9680525267586236,
		0.9667437763186459, 0.9654367964696896, 0.964131584816344, 0.9628281389664394, 0.9615264565310424,
		0.9602265351244513, 0.9589283723641914, 0.9576319658710134, 0.956337313268884, 0.9550444121849871,
		0.9537532602497147, 0.9524638550966651, 0.9511761943626394, 0.9498902756876346, 0.9486060967148394,
		0.9473236550906338, 0.9460429484645797, 0.9447639744894206, 0.9434867308210727, 0.942211215118628,
		0.9409374250443405, 0.9396653582636306, 0.9383950124450764, 0.9371263852604078, 0.9358594743845079,
	},
	// t = 10
	{
		1.0000000000000153, 0.9993235564713114, 0.9986475706733045, 0.9979720422962609, 0.997296971030656,
		0.9966223565671755, 0.9959481985967132, 0.9952744968103736, 0.9946012508994692, 0.9939284605555212,
		0.9932561254702605, 0.9925842453356257, 0.9919128198437646, 0.9912418486870324, 0.9905713315579933,
		0.989901268149419, 0.9892316581542895, 0.9885625012657924, 0.9878937971773221, 0.9872255455824832,
		0.9865577461750836, 0.9858903986491414, 0.9852235026988807, 0.9845570580187331, 0.9838910643033354,
		0.9832255212475334, 0.9825604285463772, 0.9818957858951246, 0.9812315929892388, 0.9805678495243898,
		0.9799045551964534, 0.9792417097015107, 0.9785793127358484, 0.9779173639959593, 0.9772558631785417,
		0.9765948099804984, 0.975934204098938, 0.9752740452311727, 0.974614333074722, 0.9739550673273073,
		0.9732962476868564, 0.9726378738515014, 0.9719799455195776, 0.9713224623896255, 0.9706654241603886,
		0.970008830530815, 0.9693526812000568, 0.9686969758674687, 0.9680417142326094,
	},
	// t = 11
	{
		1.0000000000000009, 0.999661663754555, 0.999323441999894, 0.9989853346972762, 0.9986473418079701,
		0.9983094632932606, 0.997971699114443, 0.9976340492328272, 0.9972965136097353, 0.996959092206504,
		0.996621784984481, 0.9962845919050286, 0.9959475129295214, 0.995610548019348, 0.9952736971359084,
		0.994936960240618, 0.9946003372949028, 0.9942638282602038, 0.9939274330979739, 0.9935911517696787,
		0.9932549842367986, 0.9929189304608259, 0.9925829904032653, 0.9922471640256358, 0.991911451289469,
		0.9915758521563085, 0.9912403665877126, 0.9909049945452514, 0.9905697359905089, 0.9902345908850805,
		0.9898995591905769, 0.98956464086862, 0.9892298358808452, 0.9888951441889011, 0.9885605657544494,
		0.9882261005391639, 0.987891748504732, 0.9875575096128544, 0.987223383825245, 0.986889371103629,
		0.9865554714097456, 0.9862216847053475, 0.9858880109521992, 0.98555445011208, 0.9852210021467793,
		0.9848876670181022, 0.9845544446878647, 0.9842213351178964,
	},
	// t = 12
	{
		0.9999999999999998, 0.9998308032485256, 0.9996616351270143, 0.9994924956306208, 0.9993233847545026,
		0.999154302493816, 0.998985248843719, 0.9988162237993707, 0.9986472273559305, 0.9984782595085587,
		0.9983093202524173, 0.9981404095826671, 0.9979715274944722, 0.9978026739829949, 0.997633849043401,
		0.9974650526708553, 0.9972962848605238, 0.9971275456075737, 0.9969588349071725, 0.9967901527544892,
		0.9966214991446931, 0.9964528740729539, 0.9962842775344435, 0.9961157095243329, 0.9959471700377954,
		0.9957786590700041, 0.9956101766161339, 0.9954417226713592, 0.9952732972308564, 0.9951049002898024,
		0.9949365318433742, 0.9947681918867508, 0.9945998804151106, 0.9944315974236344, 0.9942633429075026,
		0.9940951168618972, 0.993926919282001, 0.9937587501629962, 0.9935906095000676, 0.9934224972884006,
		0.9932544135231794, 0.9930863581995922, 0.9929183313128254, 0.9927503328580675, 0.9925823628305072,
		0.9924144212253347, 0.992246508037741,
	},
	// t = 13
	{
		1.0, 0.9999153944660151, 0.9998307960904294, 0.9997462048726371, 0.9996616208120327, 0.9995770439080108,
		0.9994924741599656, 0.9994079115672921, 0.9993233561293843, 0.999238807845637, 0.9991542667154454,
		0.999069732738204, 0.9989852059133064, 0.9989006862401496, 0.998816173718127, 0.9987316683466342,
		0.9986471701250657, 0.998562679052817, 0.9984781951292828, 0.9983937183538582, 0.9983092487259392,
		0.9982247862449203, 0.9981403309101968, 0.9980558827211647, 0.9979714416772189, 0.9978870077777549,
		0.9978025810221681, 0.9977181614098544, 0.9976337489402087, 0.9975493436126279, 0.9974649454265071,
		0.9973805543812413, 0.9972961704762275, 0.997211793710861, 0.9971274240845379, 0.9970430615966539,
		0.9969587062466053, 0.9968743580337879, 0.9967900169575982, 0.996705683017432, 0.9966213562126858,
		0.9965370365427556, 0.9964527240070382, 0.9963684186049294, 0.9962841203358263, 0.9961998291991249,
	},
	// t = 14
	{
		1.0000000000000002, 0.9999576954433133, 0.9999153926763398, 0.9998730916990035, 0.9998307925112297,
		0.999788495112942, 0.9997461995040647, 0.9997039056845225, 0.9996616136542392, 0.9996193234131394,
		0.9995770349611476, 0.9995347482981872, 0.9994924634241839, 0.9994501803390606, 0.9994078990427432,
		0.9993656195351543, 0.9993233418162194, 0.9992810658858625, 0.9992387917440076, 0.9991965193905802,
		0.9991542488255031, 0.9991119800487017, 0.9990697130600993, 0.9990274478596214, 0.9989851844471923,
		0.9989429228227353, 0.9989006629861755, 0.9988584049374375, 0.9988161486764452, 0.9987738942031235,
		0.998731641517396, 0.998689390619187, 0.9986471415084218, 0.9986048941850242, 0.9985626486489191,
		0.9985204049000296, 0.9984781629382815, 0.9984359227635989, 0.9983936843759054, 0.9983514477751263,
		0.9983092129611859, 0.9982669799340083, 0.9982247486935174, 0.9981825192396391, 0.9981402915722961,
	},
	// t = 15
	{
		1.0000000000000004, 0.9999788472742162, 0.9999576949958751, 0.999936543164967, 0.9999153917814829,
		0.9998942408454125, 0.9998730903567468, 0.9998519403154766, 0.9998307907215923, 0.9998096415750837,
		0.9997884928759422, 0.9997673446241583, 0.9997461968197219, 0.9997250494626237, 0.9997039025528555,
		0.9996827560904061, 0.9996616100752667, 0.999640464507428, 0.9996193193868802, 0.9995981747136145,
		0.9995770304876209, 0.99955588670889, 0.9995347433774123, 0.9995136004931786, 0.9994924580561793,
		0.9994713160664047, 0.9994501745238457, 0.9994290334284925, 0.9994078927803364, 0.9993867525793664,
		0.9993656128255746, 0.9993444735189507, 0.9993233346594855, 0.9993021962471694, 0.9992810582819935,
		0.999259920763948, 0.999238783693023, 0.9992176470692093, 0.9991965108924978, 0.9991753751628789,
		0.9991542398803425, 0.9991331050448801, 0.9991119706564814, 0.9990908367151377,
	},
	// t = 16
	{
		0.9999999999999998, 0.9999894235252459, 0.9999788471623543, 0.9999682709113243, 0.9999576947721538,
		0.9999471187448424, 0.9999365428293889, 0.9999259670257917, 0.9999153913340498, 0.9999048157541619,
		0.9998942402861271, 0.9998836649299441, 0.9998730896856114, 0.9998625145531284, 0.9998519395324935,
		0.9998413646237053, 0.9998307898267639, 0.9998202151416664, 0.9998096405684124, 0.9997990661070006,
		0.9997884917574305, 0.9997779175197001, 0.9997673433938083, 0.999756769379754, 0.9997461954775362,
		0.9997356216871534, 0.9997250480086048, 0.9997144744418889, 0.9997039009870051, 0.9996933276439515,
		0.9996827544127269, 0.9996721812933305, 0.9996616082857614, 0.999651035390018, 0.9996404626060986,
		0.999629889934003, 0.9996193173737296, 0.9996087449252774, 0.9995981725886448, 0.9995876003638305,
		0.9995770282508343, 0.9995664562496539, 0.9995558843602884,
	},
	// t = 17
	{
		0.9999999999999999, 0.9999947117346573, 0.9999894234972801, 0.9999841352878692, 0.9999788471064235,
		0.9999735589529428, 0.9999682708274279, 0.9999629827298778, 0.9999576946602924, 0.9999524066186722,
		0.9999471186050168, 0.9999418306193254, 0.9999365426615985, 0.9999312547318365, 0.9999259668300376,
		0.9999206789562031, 0.9999153911103319, 0.9999101032924246, 0.999904815502481, 0.9998995277405003,
		0.9998942400064826, 0.9998889523004283, 0.999883664622337, 0.9998783769722084, 0.9998730893500419,
		0.9998678017558382, 0.9998625141895966, 0.999857226651317, 0.999851939141, 0.9998466516586442,
		0.9998413642042504, 0.9998360767778179, 0.9998307893793471, 0.9998255020088372, 0.9998202146662886,
		0.999814927351701, 0.9998096400650743, 0.9998043528064078, 0.9997990655757023, 0.9997937783729567,
		0.9997884911981714, 0.9997832040513466,
	},
	// t = 18
	{
		1.0, 0.9999973558603372, 0.9999947117276654, 0.9999920676019859, 0.9999894234832976, 0.9999867793716003,
		0.999984135266895, 0.9999814911691803, 0.9999788470784579, 0.9999762029947262, 0.9999735589179859,
		0.9999709148482371, 0.9999682707854792, 0.9999656267297133, 0.9999629826809382, 0.9999603386391543,
		0.999957694604362, 0.999955050576561, 0.9999524065557502, 0.9999497625419317, 0.9999471185351038,
		0.9999444745352669, 0.9999418305424216, 0.9999391865565668, 0.9999365425777037, 0.9999338986058312,
		0.99993125464095, 0.9999286106830598, 0.9999259667321604, 0.9999233227882519, 0.9999206788513348,
		0.9999180349214085, 0.9999153909984728, 0.9999127470825281, 0.9999101031735748, 0.9999074592716118,
		0.9999048153766399, 0.9999021714886588, 0.9998995276076684, 0.9998968837336693, 0.9998942398666606,
	},
	// t = 19
	{
		1.0, 0.9999986779284206, 0.9999973558585893, 0.9999960337905058, 0.9999947117241701, 0.9999933896595822,
		0.9999920675967425, 0.99999074553565, 0.9999894234763056, 0.9999881014187093, 0.9999867793628612,
		0.9999854573087603, 0.9999841352564076, 0.9999828132058027, 0.9999814911569452, 0.9999801691098362,
		0.999978847064475, 0.9999775250208611, 0.9999762029789956, 0.9999748809388775, 0.9999735589005075,
		0.9999722368638851, 0.9999709148290105, 0.9999695927958842, 0.9999682707645053, 0.9999669487348745,
		0.9999656267069912, 0.9999643046808562, 0.9999629826564682, 0.9999616606338287, 0.9999603386129368,
		0.9999590165937929, 0.9999576945763964, 0.9999563725607481, 0.9999550505468475, 0.9999537285346947,
		0.9999524065242893, 0.9999510845156322, 0.9999497625087227, 0.9999484405035607,
	},
	// t = 20
	{
		1.0, 0.9999993389637731, 0.9999986779279837, 0.9999980168926308, 0.9999973558577155, 0.9999966948232365,
		0.9999960337891949, 0.9999953727555899, 0.9999947117224219, 0.999994050689691, 0.9999933896573975,
		0.9999927286255406, 0.9999920675941204, 0.9999914065631373, 0.9999907455325914, 0.9999900845024824,
		0.99998942347281, 0.9999887624435753, 0.9999881014147767, 0.9999874403864157, 0.9999867793584913,
		0.9999861183310041, 0.9999854573039538, 0.9999847962773404, 0.9999841352511641, 0.9999834742254244,
		0.999982813200122, 0.9999821521752563, 0.9999814911508276, 0.9999808301268364, 0.9999801691032817,
		0.9999795080801641, 0.9999788470574833, 0.9999781860352396, 0.9999775250134331, 0.999976863992063,
		0.9999762029711302, 0.9999755419506341, 0.9999748809305752,
	},
	// t = 21
	{
		1.0000000000000002, 0.9999996694817773, 0.9999993389636641, 0.99999900844566, 0.9999986779277652,
		0.9999983474099797, 0.9999980168923032, 0.9999976863747364, 0.9999973558572783, 0.9999970253399295,
		0.9999966948226905, 0.99999636430556, 0.999996033788539, 0.9999957032716277, 0.9999953727548251,
		0.9999950422381321, 0.9999947117215483, 0.9999943812050734, 0.9999940506887082, 0.9999937201724518,
		0.999993389656305, 0.9999930591402674, 0.9999927286243389, 0.9999923981085197, 0.9999920675928095,
		0.9999917370772086, 0.9999914065617171, 0.9999910760463349, 0.9999907455310622, 0.9999904150158982,
		0.9999900845008436, 0.9999897539858982, 0.9999894234710623, 0.9999890929563354, 0.9999887624417179,
		0.9999884319272092, 0.9999881014128104, 0.9999877708985206,
	},
	// t = 22
	{
		0.9999999999999999, 0.9999998347408615, 0.9999996694817499, 0.999999504222666, 0.9999993389636095,
		0.9999991737045799, 0.9999990084455779, 0.9999988431866033, 0.9999986779276561, 0.999998512668736,
		0.9999983474098428, 0.9999981821509771, 0.9999980168921391, 0.9999978516333284, 0.999997686374545,
		0.9999975211157887, 0.9999973558570597, 0.9999971905983579, 0.9999970253396839, 0.9999968600810369,
		0.9999966948224169, 0.9999965295638249, 0.9999963643052597, 0.999996199046722, 0.9999960337882118,
		0.9999958685297285, 0.9999957032712727, 0.9999955380128441, 0.9999953727544428, 0.9999952074960691,
		0.9999950422377224, 0.9999948769794033, 0.9999947117211112, 0.9999945464628466, 0.9999943812046093,
		0.9999942159463995, 0.9999940506882167,
	},
	// t = 23
	{
		1.0000000000000002, 0.9999999173704238, 0.9999998347408547, 0.9999997521112922, 0.9999996694817361,
		0.9999995868521877, 0.9999995042226456, 0.9999994215931107, 0.9999993389635821, 0.9999992563340608,
		0.9999991737045459, 0.9999990910750385, 0.9999990084455368, 0.9999989258160432, 0.9999988431865555,
		0.9999987605570753, 0.9999986779276011, 0.9999985952981346, 0.9999985126686742, 0.9999984300392212,
		0.9999983474097746, 0.9999982647803352, 0.9999981821509026, 0.9999980995214763, 0.9999980168920573,
		0.9999979342626453, 0.9999978516332397, 0.9999977690038411, 0.9999976863744494, 0.9999976037450647,
		0.9999975211156864, 0.9999974384863151, 0.9999973558569506, 0.9999972732275929, 0.9999971905982422,
		0.999997107968898,
	},
	// t = 24
	{
		0.9999999999999999, 0.9999999586852102, 0.9999999173704219, 0.9999998760556358, 0.9999998347408513,
		0.9999997934260678, 0.999999752111287, 0.9999997107965075, 0.9999996694817297, 0.9999996281669535,
		0.999999586852179, 0.9999995455374063, 0.9999995042226354, 0.999999462907866, 0.9999994215930986,
		0.999999380278333, 0.9999993389635686, 0.9999992976488062, 0.9999992563340452, 0.9999992150192863,
		0.999999173704529, 0.999999132389773, 0.9999990910750192, 0.9999990497602672, 0.9999990084455167,
		0.9999989671307677, 0.9999989258160207, 0.9999988845012752, 0.9999988431865315, 0.9999988018717897,
		0.9999987605570495, 0.999998719242311, 0.9999986779275738, 0.9999986366128387, 0.9999985952981054,
	},
}

// mlRelativeStandardErrorConstants holds the asymptotic relative standard error of
// the maximum-likelihood estimator, scaled by sqrt(m), for each (t, d) pair.
var mlRelativeStandardErrorConstants = [][]float64{
	// t = 0
	{
		1.0367047097785012, 0.8610985689698055, 0.7608621002725182, 0.7066382168397978, 0.6783279119516153,
		0.6638477061193283, 0.6565228718993559, 0.6528388194804027, 0.6509913266614189, 0.6500662062993419,
		0.6496033017127597, 0.6493717632031025, 0.6492559723797908, 0.649198071574214, 0.6491691198227203,
		0.649154643609769, 0.6491474054189887, 0.649143786302522, 0.6491419767390193, 0.6491410719559508,
		0.6491406195640871, 0.6491403933680729, 0.6491402802700453, 0.6491402237210263, 0.6491401954465156,
		0.6491401813092599, 0.649140174240632, 0.649140170706318, 0.6491401689391609, 0.6491401680555824,
		0.6491401676137932, 0.6491401673928986, 0.6491401672824513, 0.6491401672272276, 0.6491401671996158,
		0.6491401671858099, 0.6491401671789069, 0.6491401671754554, 0.6491401671737297, 0.6491401671728668,
		0.6491401671724354, 0.6491401671722197, 0.6491401671721119, 0.6491401671720579, 0.6491401671720309,
		0.6491401671720174, 0.6491401671720107, 0.6491401671720074, 0.6491401671720056, 0.6491401671720047,
		0.6491401671720044, 0.6491401671720042, 0.6491401671720041, 0.6491401671720041, 0.649140167172004,
		0.649140167172004, 0.649140167172004, 0.649140167172004, 0.649140167172004,
	},
	// t = 1
	{
		1.0097599815842222, 0.8816978068004405, 0.7793057639878204, 0.6987040082065027, 0.6363211682564768,
		0.5888497659749652, 0.5532863845988953, 0.5270017970025421, 0.5077890209323429, 0.49386708314700406,
		0.4838456912866499, 0.47666762267560686, 0.47154479800624105, 0.4678983855187634, 0.4653078071025196,
		0.46346984599109203, 0.4621671177918701, 0.46124439577311394, 0.46059115312404125, 0.4601288500630006,
		0.45980175672761103, 0.45957036884259744, 0.45940670387403987, 0.4592909507373461, 0.4592090886404912,
		0.4591511972603791, 0.4591102588041318, 0.4590813094094807, 0.4590608383288173, 0.45904636270513616,
		0.4590361267015963, 0.45902888865814107, 0.45902377054056004, 0.4590201514609255, 0.45901759237318107,
		0.4590157828188866, 0.45901450326777576, 0.4590135984870092, 0.4590129587096441, 0.459012506318356,
		0.459012186429221, 0.4590119602333507, 0.45901180028867017, 0.4590116871906785, 0.4590116072183099,
		0.45901155066929994, 0.4590115106831085, 0.4590114824086, 0.45901146241550256, 0.4590114482782474,
		0.45901143828169827, 0.4590114312130705, 0.45901142621479585, 0.45901142268048184, 0.45901142018134444,
		0.45901141841418747, 0.45901141716461874, 0.45901141628104025,
	},
	// t = 2
	{
		1.0024858187815175, 0.9271864328754049, 0.8588435330001659, 0.7969346884996926, 0.7409807938050887,
		0.6905406060702461, 0.6452052786546001, 0.6045930174176702, 0.5683440876436471, 0.5361164707060222,
		0.5075824759515718, 0.4824265355398249, 0.46034425908375004, 0.4410426415416518, 0.4242411556193552,
		0.40967336256105297, 0.39708865993868364, 0.3862538411674871, 0.37695424058385385, 0.36899434818228394,
		0.3621978749344187, 0.3564073199159496, 0.35148313157393063, 0.347302571471112, 0.3437583867745506,
		0.3407573848041335, 0.33821898500048964, 0.3360738048122168, 0.33426231869517214, 0.33273361485283703,
		0.3314442628690903, 0.3303572968369412, 0.3294413125670098, 0.32866967348348525, 0.32801981741009734,
		0.32747265519915536, 0.3270120517221536, 0.3266243798542349, 0.3262981385464091, 0.3260236267429716,
		0.32579266566450665, 0.32559836276954224, 0.3254349114851413, 0.32529742153080204, 0.32518177533564285,
		0.3250845066590293, 0.32500269806814225, 0.32493389440456183, 0.3248760297898883, 0.3248273660829408,
		0.3247864410138185, 0.3247520244887066, 0.32472308178917625, 0.3246987425858571, 0.3246782748533051,
		0.3246610629147, 0.32464658896526943,
	},
	// t = 3
	{
		1.000624539082745, 0.9601305631801287, 0.9214393412389082, 0.8844782350613243, 0.8491778333498996,
		0.8154718146636013, 0.7832968145526917, 0.7525922963241338, 0.7233004248665125, 0.6953659429459145,
		0.6687360493764788, 0.6433602784769045, 0.619190380253428, 0.5961802008076186, 0.5742855625606385,
		0.5534641440202106, 0.533675358996122, 0.5148802353946896, 0.4970412939874394, 0.48012242784337633,
		0.46408878342038545, 0.4489066446061406, 0.43454332125467626, 0.4209670439520506, 0.4081468668357921,
		0.3960525802665465, 0.3846546349947085, 0.3739240791804892, 0.3638325092270077, 0.35435203489940714,
		0.34545525866532156, 0.3371152686453556, 0.3293056440491383, 0.3220004715309987, 0.3151743705588233,
		0.30880252566846966, 0.30286072338043896, 0.297325391580247, 0.29217363929462936, 0.28738329501141413,
		0.2829329419671383, 0.27880194913821055, 0.27497049699528775, 0.2714195973966077, 0.26813110728869793,
		0.26508773614122394, 0.26227304726022904, 0.2596714532980465, 0.25726820640922016, 0.2550493835927195,
		0.25300186781592365, 0.2511133255405456, 0.24937218127040475, 0.24776758972117374, 0.24628940617797257,
		0.2449281555624115,
	},
	// t = 4
	{
		1.0001563315159447, 0.9792009205535545, 0.9587050174282221, 0.9386590078846355, 0.919053488813602,
		0.8998792638296291, 0.8811273389433326, 0.8627889183263523, 0.844855400166456, 0.8273183726105268,
		0.8101696097931258, 0.7934010679483184, 0.7770048816024507, 0.7609733598455397, 0.7452989826789312,
		0.7299743974368544, 0.714992415279466, 0.7003460077549534, 0.6860283034282167, 0.6720325845736115,
		0.6583522839291746, 0.6449809815097112, 0.6319124014760503, 0.6191404090577172, 0.6066590075262043,
		0.5944623352159497, 0.5825446625900641, 0.5709003893477751, 0.5595240415704941, 0.5484102689033423,
		0.5375538417689213, 0.5269496486100648, 0.5165926931582749, 0.5064780917245332, 0.49660107050917485,
		0.48695696292755186, 0.477541206948261, 0.4683493424408153, 0.45937700852976243, 0.45061994095243696,
		0.4420739694177564, 0.43373501496375405, 0.42559908731187795, 0.41766228221648816, 0.40992077880844263,
		0.4023708369321963, 0.39500879447642284, 0.38783106469882844, 0.3808341335465353, 0.37401455697417585,
		0.3673689582626491, 0.3608940253423234, 0.35458650812533427, 0.3484432158524832, 0.34246101446109384,
	},
	// t = 5
	{
		1.0000390952401688, 0.9893848271962653, 0.9788466173423284, 0.9684232296734667, 0.9581134416563947,
		0.9479160440860814, 0.9378298409439627, 0.9278536492577004, 0.9179862989624683, 0.9082266327637525,
		0.8985735060016464, 0.8890257865166283, 0.8795823545168003, 0.8702421024465767, 0.8610039348568059,
		0.8518667682763078, 0.842829531084814, 0.8338911633872934, 0.8250506168896511, 0.8163068547757805,
		0.8076588515859595, 0.7991055930965736, 0.7906460762011485, 0.7822793087926834, 0.7740043096472661,
		0.7658201083089583, 0.7577257449759346, 0.7497202703878635, 0.7418027457145159, 0.7339722424455858,
		0.7262278422817119, 0.7185686370266843, 0.7109937284808242, 0.703502228335523, 0.6960932580689261,
		0.6887659488427504, 0.6815194414002204, 0.6743528859651106, 0.6672654421418807, 0.6602562788168919,
		0.6533245740606882, 0.6464695150313348, 0.6396902978787945, 0.6329861276503355, 0.6263562181969531,
		0.6197997920807947, 0.6133160804835752, 0.6069043231159696, 0.6005637681279701, 0.5942936720201947,
		0.5880932995561368, 0.5819619236753379, 0.575898825407478, 0.5699032937873628,
	},
	// t = 6
	{
		1.000009774583636, 0.9946385753658621, 0.9892965437949164, 0.9839835232220949, 0.9786993578494921,
		0.9734438927254324, 0.9682169737399283, 0.9630184476201608, 0.9578481619259863, 0.9527059650454677,
		0.9475917061904279, 0.94250523539203, 0.9374464034963808, 0.9324150621601563, 0.927411063846254,
		0.922434261819467, 0.9174845101421809, 0.9125616636700973, 0.9076655780479762, 0.9027961097054055,
		0.8979531158525911, 0.8931364544761707, 0.8883459843350502, 0.8835815649562633, 0.8788430566308528,
		0.8741303204097751, 0.8694432180998258, 0.8647816122595894, 0.8601453661954089, 0.8555343439573795,
		0.8509484103353616, 0.8463874308550182, 0.8418512717738716, 0.8373398000773834, 0.8328528834750539,
		0.8283903903965452, 0.8239521899878229, 0.8195381521073208, 0.8151481473221247, 0.8107820469041793,
		0.8064397228265133, 0.8021210477594868, 0.797825895067058, 0.793554138803072, 0.7893056537075669,
		0.7850803152031035, 0.7808779993911118, 0.7766985830482603, 0.7725419436228428, 0.7684079592311854,
		0.7642965086540753, 0.7602074713332049, 0.7561407273676399,
	},
	// t = 7
	{
		1.0000024436942747, 0.9973058375180976, 0.9946165427437909, 0.9919345396559082, 0.9892598085924611,
		0.9865923299447741, 0.9839320841573418, 0.9812790517276844, 0.9786332132062054, 0.9759945491960493,
		0.9733630403529586, 0.9707386673851329, 0.9681214110530868, 0.9655112521695088, 0.9629081715991216,
		0.9603121502585403, 0.9577231691161341, 0.9551412091918857, 0.9525662515572525, 0.9499982773350278,
		0.9474372676992027, 0.9448832038748277, 0.9423360671378752, 0.9397958388151024, 0.937262500283914,
		0.9347360329722262, 0.9322164183583305, 0.9297036379707571, 0.927197673388141, 0.9246985062390852,
		0.9222061182020277, 0.919720491005106, 0.9172416064260234, 0.9147694462919161, 0.9123039924792193,
		0.9098452269135342, 0.9073931315694961, 0.9049476884706419, 0.9025088796892785, 0.9000766873463513,
		0.8976510936113128, 0.8952320807019927, 0.8928196308844667, 0.8904137264729269, 0.8880143498295525,
		0.8856214833643796, 0.883235109535173, 0.8808552108472975, 0.8784817698535894, 0.8761147691542286,
		0.8737541913966115, 0.8714000192752235,
	},
	// t = 8
	{
		1.0000006109265918, 0.9986495574268608, 0.9973003342362462, 0.9959529388819184, 0.9946073688943985,
		0.9932636218075533, 0.9919216951585905, 0.9905815864880537, 0.9892432933398193, 0.9879068132610906,
		0.9865721438023944, 0.9852392825175754, 0.9839082269637928, 0.9825789747015149, 0.9812515232945155,
		0.9799258703098687, 0.9786020133179446, 0.9772799498924057, 0.9759596776102009, 0.9746411940515622,
		0.9733244968000002, 0.9720095834422993, 0.9706964515685129, 0.9693850987719604, 0.9680755226492213,
		0.9667677208001312, 0.9654616908277782, 0.9641574303384975, 0.9628549369418673, 0.9615542082507049,
		0.9602552418810615, 0.9589580354522187, 0.9576625865866831, 0.9563688929101836, 0.9550769520516648,
		0.9537867616432845, 0.9524983193204086, 0.9512116227216073, 0.9499266694886493, 0.9486434572664998,
		0.9473619837033139, 0.9460822464504339, 0.9448042431623841, 0.943527971496867, 0.9422534291147585,
		0.9409806136801045, 0.9397095228601156, 0.9384401543251629, 0.9371725057487752, 0.9359065748076325,
		0.9346423591815636,
	},
	// t = 9
	{
		1.000000152731837, 0.9993239385335362, 0.9986481822212538, 0.9979728834853611, 0.9972980420164391,
		0.9966236575052787, 0.99594972964288, 0.9952762581204518, 0.994603242629413, 0.9939306828613907,
		0.9932585785082211, 0.9925869292619489, 0.9919157348148278, 0.9912449948593189, 0.9905747090880926,
		0.989904877194027, 0.9892354988702079, 0.9885665738099293, 0.9878981017066928, 0.9872300822542074,
		0.9865625151463896, 0.9858954000773632, 0.9852287367414589, 0.9845625248332148, 0.9838967640473757,
		0.9832314540788926, 0.9825665946229237, 0.9819021853748335, 0.9812382260301924, 0.9805747162847775,
		0.9799116558345716, 0.9792490443757631, 0.9785868816047467, 0.9779251672181223, 0.9772639009126953,
		0.9766030823854767, 0.9759427113336819, 0.9752827874547325, 0.974623310446254, 0.9739642800060772,
		0.973305695832237, 0.9726475576229735, 0.9719898650767306, 0.9713326178921562, 0.9706758157681032,
		0.9700194584036275, 0.9693635454979891, 0.9687080767506518, 0.9680530518612825, 0.9673984705297521,
	},
	// t = 10
	{
		1.000000038182971, 0.9996617592410605, 0.9993235948093352, 0.9989855448490587, 0.9986476093215079,
		0.9983097881879726, 0.9979720814097556, 0.9976344889481732, 0.9972970107645543, 0.9969596468202414,
		0.9966223970765897, 0.9962852614949675, 0.9959482400367565, 0.9956113326633511, 0.9952745393361591,
		0.994937860016601, 0.9946012946661106, 0.9942648432461347, 0.9939285057181331, 0.993592282043579,
		0.993256172183958, 0.9929201761007692, 0.9925842937555247, 0.9922485251097494, 0.9919128701249814,
		0.9915773287627719, 0.9912419009846849, 0.9909065867522975, 0.9905713860271999, 0.9902362987709951,
		0.9899013249452994, 0.9895664645117418, 0.9892317174319643, 0.9888970836676221, 0.9885625631803834,
		0.9882281559319289, 0.987893861883953, 0.9875596809981623, 0.9872256132362772, 0.9868916585600301,
		0.9865578169311672, 0.9862240883114471, 0.9858904726626418, 0.9855569699465359, 0.9852235801249267,
		0.9848903031596251, 0.9845571390124547, 0.9842240876452515, 0.9838911490198652,
	},
	// t = 11
	{
		1.0000000095457435, 0.999830827116519, 0.9996616733196815, 0.9994925481503868, 0.9993234516037915,
		0.9991543836750536, 0.998985344359331, 0.998816333651783, 0.9986473515475696, 0.9984783980418518,
		0.998309473129791, 0.9981405768065498, 0.9979717090672914, 0.99780286990718, 0.9976340593213803,
		0.9974652773050584, 0.9972965238533805, 0.9971277989615142, 0.9969591026246275, 0.9967904348378894,
		0.9966217955964698, 0.9964531848955396, 0.9962846027302698, 0.9961160490958328, 0.995947523987402,
		0.9957790274001509, 0.9956105593292545, 0.9954421197698882, 0.9952737087172285, 0.9951053261664523,
		0.9949369721127379, 0.994768646551264, 0.9946003494772101, 0.9944320808857567, 0.9942638407720852,
		0.9940956291313775, 0.9939274459588164, 0.9937592912495858, 0.9935911649988705, 0.9934230672018551,
		0.9932549978537262, 0.9930869569496708, 0.9929189444848763, 0.9927509604545318, 0.9925830048538263,
		0.9924150776779503, 0.9922471789220946, 0.9920793085814512,
	},
	// t = 12
	{
		1.000000002386436, 0.9999154004325592, 0.9998308056373846, 0.9997462180003064, 0.9996616375207192,
		0.9995770641980175, 0.9994924980315956, 0.9994079390208481, 0.9993233871651697, 0.999238842463955,
		0.999154304916599, 0.999069774522496, 0.9989852512810413, 0.9989007351916293, 0.9988162262536553,
		0.9987317244665139, 0.9986472298296006, 0.9985627423423101, 0.9984782620040378, 0.9983937888141786,
		0.9983093227721279, 0.9982248638772809, 0.9981404121290331, 0.9980559675267796, 0.9979715300699161,
		0.997887099757838, 0.9978026765899409, 0.9977182605656202, 0.9976338516842717, 0.997549449945291,
		0.997465055348074, 0.9973806678920163, 0.9972962875765138, 0.9972119144009624, 0.997127548364758,
		0.9970431894672969, 0.9969588377079747, 0.9968744930861877, 0.9967901556013322, 0.9967058252528043,
		0.99662150204, 0.996537185962316, 0.9964528770191484, 0.9963685752098937, 0.9962842805339484,
		0.9961999929907088, 0.9961157125795719,
	},
	// t = 13
	{
		1.000000000596609, 0.9999576969348923, 0.9999153950629269, 0.999873094980637, 0.9998307966879468,
		0.9997885001847809, 0.9997462054710633, 0.9997039125467184, 0.9996616214116706, 0.999619332065844,
		0.9995770445091631, 0.9995347587415522, 0.9994924747629352, 0.9994501925732371, 0.9994079121723819,
		0.9993656335602938, 0.9993233567368972, 0.9992810817021166, 0.9992388084558762, 0.9991965369981003,
		0.9991542673287134, 0.9991119994476396, 0.9990697333548034, 0.9990274690501292, 0.9989852065335413,
		0.998942945804964, 0.9989006868643218, 0.9988584297115388, 0.9988161743465396, 0.9987739207692486,
		0.9987316689795901, 0.9986894189774883, 0.9986471707628679, 0.9986049243356531, 0.9985626796957682,
		0.9985204368431376, 0.9984781957776862, 0.9984359564993376, 0.9983937190080168, 0.9983514833036479,
		0.9983092493861554, 0.9982670172554636, 0.9982247869114972, 0.9981825583541803, 0.9981403315834375,
		0.9980981065991933,
	},
	// t = 14
	{
		1.0000000001491522, 0.9999788476471041, 0.9999576955925032, 0.99993654398534, 0.9999153928256054,
		0.9998942421132895, 0.999873091848383, 0.9998519420308765, 0.9998307926607605, 0.9998096437380255,
		0.9997884952626621, 0.9997673472346607, 0.999746199654012, 0.9997250525207064, 0.9997039058347348,
		0.9996827595960872, 0.9996616138047544, 0.999640468460727, 0.9996193235639953, 0.9995981791145502,
		0.9995770351123819, 0.9995558915574813, 0.9995347484498384, 0.9995136057894441, 0.9994924635762892,
		0.9994713218103637, 0.9994501804916583, 0.9994290396201638, 0.9994078991958705, 0.9993867592187691,
		0.99936561968885, 0.9993444806061036, 0.9993233419705208, 0.9993022037820919, 0.9992810660408076,
		0.999259928746658, 0.9992387918996343, 0.9992176554997267, 0.9991965195469257, 0.999175384041222,
		0.9991542489826061, 0.9991331143710684, 0.9991119802065994, 0.9990908464891901, 0.9990697132188305,
	},
	// t = 15
	{
		1.0000000000372882, 0.9999894236184671, 0.9999788473115091, 0.999968271116413, 0.9999576950331776,
		0.9999471190618014, 0.9999365432022836, 0.999925967454623, 0.9999153918188182, 0.9999048162948682,
		0.9998942408827716, 0.9998836655825275, 0.9998730903941344, 0.9998625153175914, 0.9998519403528973,
		0.9998413655000506, 0.9998307907590503, 0.9998202161298956, 0.9998096416125846, 0.9997990672071168,
		0.9997884929134905, 0.9997779187317049, 0.9997673446617584, 0.9997567707036502, 0.999746196857379,
		0.9997356231229436, 0.9997250495003427, 0.9997144759895754, 0.9997039025906402, 0.999693329303536,
		0.9996827561282619, 0.9996721830648164, 0.9996616101131984, 0.9996510372734065, 0.9996404645454402,
		0.9996298919292976, 0.9996193194249778, 0.9996087470324796, 0.9995981747518019, 0.9995876025829434,
		0.9995770305259029, 0.9995664585806793, 0.9995558867472712, 0.999545315025678,
	},
	// t = 16
	{
		1.0000000000093219, 0.9999947117579623, 0.9999894235345687, 0.9999841353391407, 0.9999788471716783,
		0.9999735590321813, 0.9999682709206498, 0.9999629828370834, 0.9999576947814819, 0.9999524067538453,
		0.9999471187541735, 0.9999418307824662, 0.9999365428387232, 0.9999312549229447, 0.9999259670351301,
		0.9999206791752796, 0.9999153913433931, 0.9999101035394701, 0.9999048157635105, 0.9998995280155144,
		0.9998942402954817, 0.9998889526034119, 0.9998836649393051, 0.9998783773031611, 0.9998730896949797,
		0.9998678021147608, 0.9998625145625043, 0.9998572270382099, 0.9998519395418777, 0.9998466520735073,
		0.9998413646330987, 0.9998360772206515, 0.9998307898361661, 0.9998255024796419, 0.9998202151510788,
		0.9998149278504767, 0.9998096405778356, 0.9998043533331552, 0.9997990661164353, 0.9997937789276757,
		0.9997884917668767, 0.9997832046340377, 0.9997779175291585,
	},
	// t = 17
	{
		1.0000000000023304, 0.9999973558661633, 0.9999947117369877, 0.9999920676148037, 0.9999894234996111,
		0.9999867793914098, 0.9999841352902, 0.9999814911959816, 0.9999788471087545, 0.9999762030285189,
		0.9999735589552746, 0.9999709148890215, 0.9999682708297599, 0.9999656267774896, 0.9999629827322104,
		0.9999603386939225, 0.9999576946626259, 0.9999550506383205, 0.9999524066210064, 0.9999497626106831,
		0.9999471186073513, 0.9999444746110105, 0.999941830621661, 0.9999391866393025, 0.9999365426639351,
		0.9999338986955587, 0.9999312547341733, 0.9999286107797791, 0.9999259668323759, 0.9999233228919635,
		0.9999206789585423, 0.9999180350321119, 0.9999153911126726, 0.999912747200224, 0.9999101032947665,
		0.9999074593962998, 0.999904815504824, 0.9999021716203389, 0.9998995277428449, 0.9998968838723414,
		0.9998942400088289, 0.9998915961523072,
	},
	// t = 18
	{
		1.0000000000005826, 0.9999986779298773, 0.9999973558609198, 0.9999960337937102, 0.9999947117282485,
		0.9999933896645345, 0.9999920676025686, 0.9999907455423503, 0.9999894234838802, 0.9999881014271578,
		0.9999867793721832, 0.9999854573189564, 0.9999841352674775, 0.9999828132177466, 0.9999814911697634,
		0.999980169123528, 0.9999788470790406, 0.9999775250363011, 0.9999762029953092, 0.9999748809560653,
		0.9999735589185691, 0.9999722368828208, 0.9999709148488204, 0.9999695928165677, 0.999968270786063,
		0.999966948757306, 0.9999656267302969, 0.9999643047050355, 0.999962982681522, 0.9999616606597561,
		0.9999603386397383, 0.9999590166214682, 0.9999576946049459, 0.9999563725901713, 0.9999550505771447,
		0.9999537285658658, 0.9999524065563347, 0.9999510845485513, 0.9999497625425159, 0.9999484405382283,
		0.9999471185356883,
	},
	// t = 19
	{
		1.0000000000001457, 0.9999993389641375, 0.9999986779285663, 0.9999980168934322, 0.999997355858735,
		0.9999966948244746, 0.9999960337906514, 0.999995372757265, 0.9999947117243155, 0.9999940506918032,
		0.999993389659728, 0.9999927286280894, 0.999992067596888, 0.9999914065661234, 0.9999907455357958,
		0.9999900845059053, 0.9999894234764517, 0.999988762447435, 0.9999881014188553, 0.9999874403907126,
		0.9999867793630068, 0.9999861183357379, 0.999985457308906, 0.9999847962825112, 0.9999841352565533,
		0.9999834742310324, 0.9999828132059484, 0.9999821521813014, 0.9999814911570912, 0.9999808301333182,
		0.999980169109982, 0.9999795080870829, 0.9999788470646205, 0.9999781860425954, 0.999977525021007,
		0.9999768639998557, 0.9999762029791412, 0.9999755419588638, 0.9999748809390234, 0.9999742199196199,
	},
	// t = 20
	{
		1.0000000000000364, 0.9999996694818685, 0.9999993389638098, 0.9999990084458603, 0.9999986779280202,
		0.9999983474102891, 0.9999980168926674, 0.999997686375155, 0.9999973558577516, 0.9999970253404576,
		0.999996694823273, 0.9999963643061975, 0.9999960337892312, 0.9999957032723742, 0.9999953727556264,
		0.9999950422389878, 0.9999947117224585, 0.9999943812060386, 0.9999940506897277, 0.9999937201735262,
		0.9999933896574337, 0.9999930591414508, 0.9999927286255769, 0.9999923981098122, 0.9999920675941569,
		0.9999917370786107, 0.9999914065631739, 0.9999910760478462, 0.9999907455326277, 0.9999904150175186,
		0.9999900845025187, 0.999989753987628, 0.9999894234728467, 0.9999890929581744, 0.9999887624436116,
		0.9999884319291578, 0.9999881014148132, 0.999987770900578, 0.9999874403864522,
	},
	// t = 21
	{
		1.000000000000009, 0.9999998347408842, 0.9999996694817865, 0.9999995042227162, 0.9999993389636732,
		0.9999991737046575, 0.9999990084456691, 0.9999988431867082, 0.9999986779277743, 0.9999985126688679,
		0.9999983474099887, 0.9999981821511369, 0.9999980168923124, 0.9999978516335152, 0.9999976863747453,
		0.9999975211160027, 0.9999973558572876, 0.9999971905985995, 0.9999970253399388, 0.9999968600813055,
		0.9999966948226995, 0.9999965295641207, 0.9999963643055694, 0.9999961990470453, 0.9999960337885484,
		0.9999958685300789, 0.9999957032716368, 0.9999955380132218, 0.9999953727548344, 0.9999952074964741,
		0.9999950422381412, 0.9999948769798356, 0.9999947117215573, 0.9999945464633063, 0.9999943812050827,
		0.9999942159468862, 0.9999940506887172, 0.9999938854305754,
	},
	// t = 22
	{
		1.0000000000000022, 0.9999999173704296, 0.9999998347408636, 0.9999997521113047, 0.9999996694817525,
		0.9999995868522069, 0.9999995042226684, 0.9999994215931367, 0.9999993389636118, 0.9999992563340937,
		0.9999991737045824, 0.9999990910750779, 0.9999990084455803, 0.9999989258160896, 0.9999988431866056,
		0.9999987605571284, 0.9999986779276582, 0.9999985952981948, 0.9999985126687382, 0.9999984300392883,
		0.9999983474098453, 0.9999982647804092, 0.9999981821509799, 0.9999980995215574, 0.9999980168921417,
		0.9999979342627329, 0.9999978516333309, 0.9999977690039357, 0.9999976863745472, 0.9999976037451658,
		0.999997521115791, 0.9999974384864232, 0.9999973558570622, 0.9999972732277079, 0.9999971905983606,
		0.9999971079690201, 0.9999970253396863,
	},
	// t = 23
	{
		1.0000000000000004, 0.9999999586852116, 0.9999999173704245, 0.999999876055639, 0.9999998347408551,
		0.999999793426073, 0.9999997521112927, 0.9999997107965141, 0.999999669481737, 0.9999996281669618,
		0.9999995868521881, 0.9999995455374164, 0.9999995042226463, 0.9999994629078779, 0.9999994215931111,
		0.9999993802783461, 0.9999993389635827, 0.9999992976488211, 0.9999992563340612, 0.999999215019303,
		0.9999991737045466, 0.9999991323897918, 0.9999990910750387, 0.9999990497602872, 0.9999990084455377,
		0.9999989671307897, 0.9999989258160434, 0.9999988845012989, 0.9999988431865562, 0.9999988018718151,
		0.9999987605570756, 0.999998719242338, 0.9999986779276019, 0.9999986366128677, 0.9999985952981351,
		0.9999985539834041,
	},
	// t = 24
	{
		1.0, 0.9999999793426051, 0.9999999586852103, 0.9999999380278161, 0.9999999173704224, 0.9999998967130288,
		0.9999998760556359, 0.9999998553982434, 0.9999998347408513, 0.9999998140834596, 0.9999997934260683,
		0.9999997727686775, 0.9999997521112871, 0.9999997314538971, 0.9999997107965076, 0.9999996901391186,
		0.9999996694817298, 0.9999996488243416, 0.9999996281669536, 0.9999996075095663, 0.9999995868521793,
		0.9999995661947926, 0.9999995455374066, 0.9999995248800209, 0.9999995042226356, 0.9999994835652507,
		0.9999994629078662, 0.9999994422504822, 0.9999994215930986, 0.9999994009357156, 0.9999993802783328,
		0.9999993596209505, 0.9999993389635686, 0.9999993183061872, 0.9999992976488061,
	},
}

// martingaleRelativeStandardErrorConstants holds the asymptotic relative standard error
// of the martingale estimator, scaled by sqrt(m), for each (t, d) pair.
var martingaleRelativeStandardErrorConstants = [][]float64{
	// t = 0
	{
		0.8325546111576977, 0.7210134433004415, 0.6581922119335398, 0.6244159583682733, 0.6068232359365212,
		0.5978327650574379, 0.5932864423093597, 0.5910001662047439, 0.5898537050549092, 0.5892796380526721,
		0.5889923947316555, 0.588848720526632, 0.5887768702767731, 0.588740941863603, 0.5887229768347823,
		0.5887139941147909, 0.5887095027033973, 0.5887072569848507, 0.5887061341223648, 0.5887055726903188,
		0.588705291974095, 0.588705151615933, 0.5887050814368393, 0.5887050463472894, 0.5887050288025136,
		0.5887050200301255, 0.5887050156439315, 0.5887050134508344, 0.5887050123542859, 0.5887050118060116,
		0.5887050115318745, 0.5887050113948059, 0.5887050113262716, 0.5887050112920045, 0.588705011274871,
		0.5887050112663041, 0.5887050112620207, 0.5887050112598791, 0.5887050112588081, 0.5887050112582728,
		0.588705011258005, 0.5887050112578712, 0.5887050112578043, 0.5887050112577709, 0.5887050112577541,
		0.5887050112577457, 0.5887050112577416, 0.5887050112577394, 0.5887050112577383, 0.5887050112577379,
		0.5887050112577377, 0.5887050112577374, 0.5887050112577373, 0.5887050112577373, 0.5887050112577373,
		0.5887050112577373, 0.5887050112577373, 0.5887050112577373, 0.5887050112577373,
	},
	// t = 1
	{
		0.7691801649464899, 0.6849130296713161, 0.6184354943270542, 0.5667418518838747, 0.5271381487729446,
		0.49723390965256486, 0.4749533782550417, 0.45854572075659006, 0.44658006373765896, 0.43792178135151427,
		0.4316946539325671, 0.4272366333322026, 0.4240560513504938, 0.4217925651318556, 0.4201846795320832,
		0.41904400910912504, 0.41823555567016646, 0.41766294826704153, 0.41725757941990654, 0.4169707025050463,
		0.41676773071061174, 0.41662414829648203, 0.41652259032473815, 0.41645076304633866, 0.4163999660127364,
		0.4163640433454023, 0.41633864031302353, 0.41632067672103334, 0.41630797407549347, 0.4162989917147563,
		0.41629264010959166, 0.4162881487880174, 0.4162849729148293, 0.41628272721873827, 0.41628113926449184,
		0.41628001640762, 0.4162792224260836, 0.4162786609954411, 0.41627826400356954, 0.4162779832876966,
		0.41627778479148503, 0.4162776444334107, 0.4162775451852359, 0.41627747500616424, 0.41627742538205964,
		0.4162773902925152, 0.41627736548045857, 0.41627734793568416, 0.4162773355296548, 0.41627732675726703,
		0.4162773205542521, 0.41627731616805813, 0.4162773130665506, 0.4162773108734535, 0.41627730932269974,
		0.4162773082261512, 0.4162773074507743, 0.41627730690250003,
	},
	// t = 2
	{
		0.7379513891685681, 0.6868144803029489, 0.640662154639265, 0.5991072724962557, 0.5617898407526664,
		0.5283736972653933, 0.49854357580707964, 0.4720026067342722, 0.4484703015489986, 0.42768105027689424,
		0.4093831301778949, 0.3933381867642278, 0.37932110997243673, 0.36712019716704536, 0.35653747688303705,
		0.34738906627653365, 0.3395054506489657, 0.33273160109761396, 0.32692688019809213, 0.32196471929271614,
		0.3177320794241199, 0.3141287283415629, 0.311066377615816, 0.308467727679275, 0.30626546643816077,
		0.30440126111719756, 0.30282477512005074, 0.30149273340298643, 0.3003680521481748, 0.29941904192931135,
		0.29861868829370214, 0.297944009727329, 0.29737549018142184, 0.29689658152280896, 0.296493270217255,
		0.2961537020724136, 0.2958678587905706, 0.295627280278667, 0.2954248270322887, 0.2952544773760333,
		0.2951111548512782, 0.2949905815572378, 0.29488915374853214, 0.29480383645789593, 0.29473207433841353,
		0.29467171630262595, 0.2946209518758965, 0.294578257480323, 0.2945423511261303, 0.2945121542133095,
		0.29448675934093577, 0.294465403188674, 0.2944474436779014, 0.29443234074177155, 0.2944196401372702,
		0.29440895982040144, 0.29439997848033556,
	},
	// t = 3
	{
		0.7224774080856514, 0.694440373430163, 0.6676963164783968, 0.64219372047551, 0.6178832475757742,
		0.5947176316162615, 0.572651573944134, 0.5516416421754952, 0.5316461717999846, 0.5126251705851074,
		0.49454022577734563, 0.47735441414276986, 0.4610322149371896, 0.44553942594357004, 0.4308430827608183,
		0.4169113815711162, 0.4037136056504508, 0.39122005591636466, 0.3794019858256573, 0.36823154094033256,
		0.3576817034703394, 0.3477262420749421, 0.33833966715997243, 0.3294971918457981, 0.3211746987017224,
		0.3133487122489895, 0.3059963771300641, 0.29909544173080305, 0.29262424692977884, 0.28656171954097237,
		0.28088736991801316, 0.2755812931053768, 0.2706241728589103, 0.26599728781803084, 0.2616825190968256,
		0.25766235857138775, 0.2539199171749006, 0.2504389325676776, 0.2472037756229214, 0.2441994552559733,
		0.24141162122044366, 0.2388265645940008, 0.2364312157751775, 0.23421313990633294, 0.23216052972362136,
		0.23026219591004768, 0.22850755509088125, 0.22688661566111681, 0.2253899616722976, 0.2240087350314369,
		0.22273461627902064, 0.22155980421748442, 0.22047699465766157, 0.2194793585400615, 0.21856051967202209,
		0.2177145323022236,
	},
	// t = 4
	{
		0.7147787216915987, 0.7001186474749131, 0.6857864347374723, 0.6717753175723157, 0.6580786781942437,
		0.644690043687406, 0.6316030828133666, 0.6188116028778863, 0.6063095466546793, 0.5940909893644449,
		0.5821501357074994, 0.5704813169483725, 0.5590789880507662, 0.5479377248613131, 0.53705222134061,
		0.526417286840047, 0.516027843422995, 0.505878923228968, 0.4959656658794193, 0.4862833159238983,
		0.47682722032534036, 0.46759282598333757, 0.45857567729429716, 0.4497714137474708, 0.44117576755591476,
		0.4327845613215213, 0.42459370573335065, 0.4165991972985832, 0.4087971161055121, 0.40118362361809484,
		0.39375496050169445, 0.3865074444797503, 0.3794374682212376, 0.37254149725889485, 0.3658160679383248,
		0.35925778539820136, 0.35286332158194694, 0.34662941328137614, 0.34055286021293496, 0.33463052312729696,
		0.32885932195320905, 0.3232362339766073, 0.3177582920561456, 0.31242258287640007, 0.30722624524011766,
		0.3021664684009821, 0.29724049043845724, 0.29244559667634384, 0.28777911814674895, 0.28323843010121125,
		0.2788209505707519, 0.2745241389766284, 0.27034549479355374, 0.2662825562671064, 0.2623328991869959,
	},
	// t = 5
	{
		0.7109393517582451, 0.7034460966201601, 0.6960353156483172, 0.6887061382875596, 0.6814577035142232,
		0.6742891597338866, 0.6671996646801892, 0.660188385314706, 0.6532544977278669, 0.646397187040905,
		0.6396156473088255, 0.6329090814243794, 0.6262767010230313, 0.6197177263889078, 0.613231386361716,
		0.6068169182446197, 0.6004735677130589, 0.5942005887245041, 0.5879972434291325, 0.5818628020814122,
		0.5757965429525869, 0.5697977522440452, 0.5638657240015666, 0.5579997600304313, 0.5521991698113812,
		0.546463270417424, 0.5407913864314671, 0.5351828498647698, 0.5296370000762055, 0.5241531836923199,
		0.5187307545281763, 0.5133690735089775, 0.5080675085924522, 0.5028254346919957, 0.49764223360055654,
		0.49251729391525545, 0.4874500109627284, 0.48243978672518295, 0.4774860297671577, 0.47258815516297487,
		0.46774558442487557, 0.4629577454318287, 0.45822407235900264, 0.45354400560789077, 0.4489169917370808,
		0.44434248339365784, 0.4398199392452333, 0.4353488239125877, 0.43092860790292087, 0.4265587675436976,
		0.422238784917082, 0.41796814779494973, 0.4137463495744702, 0.4095728892142492,
	},
	// t = 6
	{
		0.7090222095148384, 0.7052344389159854, 0.7014673465807212, 0.6977208220008715, 0.6939947552707645,
		0.6902890370839981, 0.6866035587302243, 0.6829382120919506, 0.6792928896413594, 0.6756674844371433,
		0.6720618901213588, 0.6684760009162957, 0.6649097116213647, 0.6613629176100002, 0.6578355148265811,
		0.6543273997833671, 0.6508384695574522, 0.6473686217877347, 0.6439177546719027, 0.6404857669634361,
		0.6370725579686254, 0.6336780275436055, 0.6303020760914058, 0.6269446045590168, 0.6236055144344714,
		0.6202847077439423, 0.6169820870488549, 0.6136975554430163, 0.6104310165497586, 0.6071823745190984,
		0.6039515340249111, 0.6007384002621202, 0.5975428789439026, 0.5943648762989071, 0.5912042990684895,
		0.588061054503962, 0.5849350503638565, 0.5818261949112036, 0.5787343969108255, 0.5756595656266439,
		0.5726016108190013, 0.569560442741998, 0.5665359721408418, 0.5635281102492136, 0.5605367687866444,
		0.55756185995591, 0.5546032964404357, 0.5516609914017175, 0.5487348584767563, 0.5458248117755047,
		0.5429307658783292, 0.5400526358334848, 0.5371903371546023,
	},
	// t = 7
	{
		0.7080642802328282, 0.7061600678329878, 0.704261032235783, 0.702367159517888, 0.7004784357938172,
		0.6985948472158224, 0.696716379973792, 0.6948430202951493, 0.6929747544447514, 0.6911115687247886,
		0.689253449474684, 0.6874003830709928, 0.6855523559273028, 0.6837093544941345, 0.6818713652588418,
		0.6800383747455129, 0.6782103695148707, 0.6763873361641756, 0.6745692613271257, 0.6727561316737598,
		0.6709479339103588, 0.6691446547793487, 0.667346281059203, 0.665552799564346, 0.6637641971450554,
		0.6619804606873666, 0.6602015771129761, 0.6584275333791454, 0.6566583164786053, 0.6548939134394607,
		0.6531343113250953, 0.6513794972340764, 0.6496294583000607, 0.6478841816916995, 0.6461436546125446,
		0.6444078643009544, 0.6426767980300006, 0.6409504431073737, 0.6392287868752916, 0.6375118167104049,
		0.6357995200237053, 0.6340918842604334, 0.6323888968999853, 0.630690545455822, 0.6289968174753775,
		0.6273077005399667, 0.6256231822646946, 0.6239432502983662, 0.6222678923233943, 0.6205970960557106,
		0.6189308492446743, 0.6172691396729835,
	},
	// t = 8
	{
		0.7075854768204884, 0.7066307837391925, 0.7056773857493195, 0.7047252811034591, 0.7037744680565713,
		0.7028249448659828, 0.7018767097913848, 0.7009297610948286, 0.6999840970407233, 0.6990397158958322,
		0.6980966159292699, 0.6971547954124987, 0.6962142526193258, 0.6952749858259001, 0.6943369933107091,
		0.6934002733545751, 0.692464824240653, 0.6915306442544268, 0.6905977316837061, 0.689666084818623,
		0.6887357019516299, 0.6878065813774952, 0.6868787213933005, 0.685952120298438, 0.6850267763946067,
		0.6841026879858099, 0.6831798533783514, 0.6822582708808332, 0.6813379388041515, 0.6804188554614945,
		0.6795010191683387, 0.6785844282424459, 0.6776690810038604, 0.6767549757749055, 0.6758421108801812,
		0.6749304846465597, 0.674020095403184, 0.6731109414814637, 0.6722030212150724, 0.6712963329399444,
		0.6703908749942721, 0.6694866457185022, 0.6685836434553335, 0.6676818665497134, 0.6667813133488346,
		0.6658819822021328, 0.6649838714612831, 0.6640869794801972, 0.6631913046150204, 0.6622968452241281,
		0.6614035996681239,
	},
	// t = 9
	{
		0.7073461155175064, 0.7068681216221043, 0.7063904516100539, 0.7059131052624873, 0.7054360823606854,
		0.7049593826860772, 0.7044830060202395, 0.7040069521448974, 0.703531220841924, 0.7030558118933399,
		0.7025807250813136, 0.7021059601881611, 0.7016315169963458, 0.701157395288479, 0.7006835948473185,
		0.7002101154557699, 0.6997369568968859, 0.6992641189538658, 0.698791601410056, 0.69831940404895,
		0.6978475266541876, 0.6973759690095553, 0.6969047308989862, 0.6964338121065597, 0.6959632124165018,
		0.6954929316131842, 0.6950229694811251, 0.6945533258049886, 0.6940840003695847, 0.6936149929598692,
		0.6931463033609436, 0.6926779313580552, 0.6922098767365965, 0.6917421392821058, 0.6912747187802664,
		0.6908076150169068, 0.690340827778001, 0.6898743568496676, 0.6894082020181705, 0.6889423630699182,
		0.688476839791464, 0.6880116319695057, 0.687546739390886, 0.6870821618425914, 0.6866178991117536,
		0.6861539509856478, 0.6856903172516938, 0.6852269976974552, 0.6847639921106397, 0.6843013002790987,
	},
	// t = 10
	{
		0.7072264449788103, 0.7069872861133625, 0.7067482082325117, 0.706509211308872, 0.7062702953150666,
		0.7060314602237275, 0.7057927060074968, 0.7055540326390252, 0.7053154400909729, 0.7050769283360093,
		0.7048384973468131, 0.7046001470960724, 0.7043618775564844, 0.7041236887007553, 0.7038855805016009,
		0.7036475529317462, 0.7034096059639253, 0.7031717395708816, 0.7029339537253677, 0.7026962484001454,
		0.702458623567986, 0.7022210792016695, 0.7019836152739857, 0.701746231757733, 0.7015089286257196,
		0.7012717058507625, 0.701034563405688, 0.700797501263332, 0.7005605193965387, 0.7003236177781624,
		0.7000867963810663, 0.6998500551781225, 0.6996133941422126, 0.6993768132462272, 0.6991403124630664,
		0.6989038917656392, 0.6986675511268635, 0.698431290519667, 0.6981951099169864, 0.697959009291767,
		0.697722988616964, 0.6974870478655414, 0.6972511870104723, 0.6970154060247391, 0.6967797048813333,
		0.6965440835532557, 0.6963085420135158, 0.6960730802351327, 0.6958376981911345,
	},
	// t = 11
	{
		0.7071666122391607, 0.7070469923171329, 0.706927392642971, 0.70680781321325, 0.7066882540245457,
		0.7065687150734339, 0.7064491963564916, 0.706329697870296, 0.7062102196114248, 0.7060907615764569,
		0.7059713237619711, 0.705851906164547, 0.7057325087807649, 0.7056131316072055, 0.7054937746404502,
		0.705374437877081, 0.7052551213136805, 0.7051358249468316, 0.705016548773118, 0.7048972927891242,
		0.7047780569914347, 0.7046588413766351, 0.7045396459413115, 0.7044204706820503, 0.7043013155954386,
		0.7041821806780644, 0.7040630659265157, 0.7039439713373815, 0.7038248969072515, 0.7037058426327153,
		0.7035868085103637, 0.7034677945367881, 0.70334880070858, 0.7032298270223317, 0.7031108734746364,
		0.7029919400620874, 0.7028730267812788, 0.7027541336288053, 0.7026352606012622, 0.7025164076952451,
		0.7023975749073506, 0.7022787622341754, 0.7021599696723172, 0.7020411972183742, 0.7019224448689448,
		0.7018037126206286, 0.7016850004700251, 0.701566308413735,
	},
	// t = 12
	{
		0.7071366965019477, 0.7070768764173755, 0.707017061394984, 0.7069572514343452, 0.7068974465350308,
		0.7068376466966128, 0.7067778519186627, 0.7067180622007528, 0.7066582775424549, 0.706598497943341,
		0.7065387234029831, 0.7064789539209532, 0.7064191894968235, 0.706359430130166, 0.706299675820553,
		0.7062399265675566, 0.7061801823707491, 0.7061204432297027, 0.7060607091439899, 0.7060009801131828,
		0.7059412561368539, 0.7058815372145756, 0.7058218233459204, 0.7057621145304606, 0.705702410767769,
		0.705642712057418, 0.7055830183989803, 0.7055233297920284, 0.705463646236135, 0.705403967730873,
		0.7053442942758149, 0.7052846258705335, 0.7052249625146018, 0.7051653042075925, 0.7051056509490785,
		0.7050460027386327, 0.7049863595758282, 0.7049267214602378, 0.7048670883914347, 0.704807460368992,
		0.7047478373924826, 0.7046882194614797, 0.7046286065755566, 0.7045689987342865, 0.7045093959372425,
		0.704449798183998, 0.7043902054741263,
	},
	// t = 13
	{
		0.7071217387915177, 0.707091826218188, 0.7070619149104302, 0.707032004868191, 0.7070020960914166,
		0.7069721885800536, 0.7069422823340485, 0.7069123773533479, 0.7068824736378979, 0.7068525711876453,
		0.7068226700025365, 0.7067927700825178, 0.706762871427536, 0.7067329740375373, 0.7067030779124684,
		0.7066731830522758, 0.7066432894569057, 0.706613397126305, 0.7065835060604198, 0.7065536162591969,
		0.7065237277225827, 0.7064938404505237, 0.7064639544429664, 0.7064340696998572, 0.7064041862211429,
		0.7063743040067698, 0.7063444230566843, 0.7063145433708333, 0.706284664949163, 0.70625478779162,
		0.7062249118981508, 0.706195037268702, 0.7061651639032203, 0.7061352918016518, 0.7061054209639434,
		0.7060755513900414, 0.7060456830798925, 0.7060158160334432, 0.70598595025064, 0.7059560857314294,
		0.7059262224757581, 0.7058963604835726, 0.7058664997548194, 0.705836640289445, 0.7058067820873961,
		0.7057769251486192,
	},
	// t = 14
	{
		0.7071142599758498, 0.7070993030564047, 0.707084346453356, 0.707069390166697, 0.707054434196421,
		0.7070394785425212, 0.7070245232049911, 0.7070095681838238, 0.7069946134790126, 0.706979659090551,
		0.7069647050184322, 0.7069497512626495, 0.7069347978231961, 0.7069198447000656, 0.7069048918932512,
		0.7068899394027461, 0.7068749872285437, 0.7068600353706372, 0.70684508382902, 0.7068301326036854,
		0.7068151816946268, 0.7068002311018372, 0.7067852808253103, 0.7067703308650393, 0.7067553812210172,
		0.7067404318932378, 0.7067254828816939, 0.7067105341863793, 0.7066955858072871, 0.7066806377444105,
		0.7066656899977429, 0.7066507425672777, 0.706635795453008, 0.7066208486549274, 0.7066059021730291,
		0.7065909560073063, 0.7065760101577523, 0.7065610646243605, 0.7065461194071243, 0.7065311745060369,
		0.7065162299210916, 0.7065012856522818, 0.7064863416996007, 0.7064713980630417, 0.7064564547425981,
	},
	// t = 15
	{
		0.7071105205779029, 0.7071030419599829, 0.7070955634211624, 0.7070880849614407, 0.7070806065808167,
		0.7070731282792898, 0.7070656500568591, 0.7070581719135236, 0.7070506938492825, 0.7070432158641352,
		0.7070357379580807, 0.7070282601311182, 0.7070207823832467, 0.7070133047144657, 0.7070058271247741,
		0.706998349614171, 0.7069908721826558, 0.7069833948302275, 0.7069759175568854, 0.7069684403626286,
		0.7069609632474562, 0.7069534862113674, 0.7069460092543614, 0.7069385323764373, 0.7069310555775944,
		0.7069235788578316, 0.7069161022171484, 0.7069086256555437, 0.7069011491730168, 0.7068936727695668,
		0.7068861964451929, 0.7068787201998942, 0.70687124403367, 0.7068637679465193, 0.7068562919384414,
		0.7068488160094353, 0.7068413401595003, 0.7068338643886355, 0.7068263886968402, 0.7068189130841135,
		0.7068114375504543, 0.7068039620958622, 0.706796486720336, 0.7067890114238751,
	},
	// t = 16
	{
		0.7071086508814012, 0.7071049115328916, 0.7071011722041568, 0.707097432895197, 0.7070936936060118,
		0.7070899543366013, 0.7070862150869652, 0.7070824758571036, 0.7070787366470163, 0.7070749974567031,
		0.7070712582861641, 0.707067519135399, 0.7070637800044078, 0.7070600408931904, 0.7070563018017467,
		0.7070525627300767, 0.7070488236781799, 0.7070450846460566, 0.7070413456337065, 0.7070376066411296,
		0.7070338676683258, 0.7070301287152948, 0.7070263897820367, 0.7070226508685513, 0.7070189119748386,
		0.7070151731008983, 0.7070114342467306, 0.7070076954123351, 0.7070039565977119, 0.7070002178028607,
		0.7069964790277815, 0.7069927402724743, 0.7069890015369388, 0.706985262821175, 0.7069815241251828,
		0.7069777854489621, 0.7069740467925127, 0.7069703081558346, 0.7069665695389278, 0.7069628309417918,
		0.706959092364427, 0.7069553538068329, 0.7069516152690095,
	},
	// t = 17
	{
		0.7071077160337684, 0.7071058463496261, 0.7071039766704276, 0.7071021069961728, 0.7071002373268617,
		0.7070983676624942, 0.7070964980030706, 0.7070946283485905, 0.7070927586990541, 0.7070908890544614,
		0.7070890194148123, 0.7070871497801069, 0.707085280150345, 0.7070834105255267, 0.7070815409056521,
		0.7070796712907209, 0.7070778016807333, 0.7070759320756893, 0.7070740624755889, 0.7070721928804319,
		0.7070703232902185, 0.7070684537049484, 0.7070665841246219, 0.7070647145492389, 0.7070628449787993,
		0.7070609754133031, 0.7070591058527504, 0.7070572362971411, 0.7070553667464752, 0.7070534972007527,
		0.7070516276599735, 0.7070497581241377, 0.7070478885932453, 0.7070460190672961, 0.7070441495462904,
		0.7070422800302278, 0.7070404105191087, 0.7070385410129327, 0.7070366715117001, 0.7070348020154107,
		0.7070329325240646, 0.7070310630376616,
	},
	// t = 18
	{
		0.7071072486101065, 0.7071063137655634, 0.7071053789222564, 0.7071044440801852, 0.7071035092393501,
		0.7071025743997508, 0.7071016395613875, 0.70710070472426, 0.7070997698883685, 0.707098835053713,
		0.7070979002202933, 0.7070969653881096, 0.7070960305571617, 0.70709509572745, 0.707094160898974,
		0.707093226071734, 0.7070922912457298, 0.7070913564209615, 0.7070904215974292, 0.7070894867751328,
		0.7070885519540723, 0.7070876171342477, 0.707086682315659, 0.7070857474983062, 0.7070848126821894,
		0.7070838778673083, 0.7070829430536631, 0.7070820082412539, 0.7070810734300806, 0.7070801386201432,
		0.7070792038114417, 0.7070782690039761, 0.7070773341977463, 0.7070763993927524, 0.7070754645889944,
		0.7070745297864722, 0.7070735949851861, 0.7070726601851357, 0.7070717253863212, 0.7070707905887427,
		0.7070698557923999,
	},
	// t = 19
	{
		0.7071070148983142, 0.7071065474754247, 0.7071060800528441, 0.7071056126305727, 0.7071051452086101,
		0.7071046777869566, 0.7071042103656121, 0.7071037429445765, 0.7071032755238499, 0.7071028081034323,
		0.7071023406833237, 0.707101873263524, 0.7071014058440334, 0.7071009384248517, 0.7071004710059791,
		0.7071000035874153, 0.7070995361691605, 0.7070990687512148, 0.707098601333578, 0.7070981339162503,
		0.7070976664992314, 0.7070971990825216, 0.7070967316661207, 0.7070962642500289, 0.7070957968342461,
		0.7070953294187721, 0.7070948620036072, 0.7070943945887512, 0.7070939271742043, 0.7070934597599663,
		0.7070929923460373, 0.7070925249324173, 0.7070920575191061, 0.707091590106104, 0.7070911226934109,
		0.7070906552810269, 0.7070901878689516, 0.7070897204571855, 0.7070892530457283, 0.70708878563458,
	},
	// t = 20
	{
		0.7071068980424277, 0.7071066643308284, 0.7071064306193063, 0.7071061969078616, 0.7071059631964942,
		0.7071057294852039, 0.7071054957739908, 0.7071052620628552, 0.7071050283517967, 0.7071047946408154,
		0.7071045609299114, 0.7071043272190847, 0.7071040935083351, 0.7071038597976629, 0.7071036260870678,
		0.7071033923765501, 0.7071031586661095, 0.7071029249557462, 0.7071026912454601, 0.7071024575352512,
		0.7071022238251198, 0.7071019901150655, 0.7071017564050884, 0.7071015226951886, 0.7071012889853661,
		0.7071010552756206, 0.7071008215659526, 0.7071005878563618, 0.7071003541468481, 0.7071001204374118,
		0.7070998867280528, 0.7070996530187709, 0.7070994193095662, 0.7070991856004388, 0.7070989518913888,
		0.7070987181824159, 0.7070984844735202, 0.7070982507647018, 0.7070980170559608,
	},
	// t = 21
	{
		0.7071068396144867, 0.7071067227586485, 0.7071066059028296, 0.70710648904703, 0.7071063721912497,
		0.7071062553354887, 0.707106138479747, 0.7071060216240246, 0.7071059047683216, 0.7071057879126378,
		0.7071056710569734, 0.7071055542013283, 0.7071054373457024, 0.707105320490096, 0.7071052036345088,
		0.7071050867789409, 0.7071049699233923, 0.7071048530678631, 0.7071047362123531, 0.7071046193568625,
		0.7071045025013912, 0.7071043856459391, 0.7071042687905065, 0.7071041519350931, 0.707104035079699,
		0.7071039182243243, 0.7071038013689689, 0.7071036845136327, 0.7071035676583158, 0.7071034508030183,
		0.7071033339477402, 0.7071032170924813, 0.7071031002372417, 0.7071029833820214, 0.7071028665268204,
		0.7071027496716388, 0.7071026328164765, 0.7071025159613334,
	},
	// t = 22
	{
		0.7071068104005169, 0.7071067519725881, 0.7071066935446642, 0.7071066351167451, 0.7071065766888308,
		0.7071065182609213, 0.7071064598330167, 0.7071064014051168, 0.707106342977222, 0.7071062845493318,
		0.7071062261214465, 0.7071061676935659, 0.7071061092656903, 0.7071060508378194, 0.7071059924099534,
		0.7071059339820922, 0.7071058755542359, 0.7071058171263843, 0.7071057586985376, 0.7071057002706959,
		0.7071056418428587, 0.7071055834150265, 0.7071055249871991, 0.7071054665593766, 0.7071054081315589,
		0.707105349703746, 0.7071052912759379, 0.7071052328481346, 0.7071051744203363, 0.7071051159925427,
		0.7071050575647538, 0.7071049991369699, 0.7071049407091908, 0.7071048822814165, 0.707104823853647,
		0.7071047654258825, 0.7071047069981227,
	},
	// t = 23
	{
		0.7071067957935322, 0.7071067665795654, 0.7071067373655998, 0.7071067081516353, 0.7071066789376722,
		0.7071066497237102, 0.7071066205097495, 0.7071065912957899, 0.7071065620818315, 0.7071065328678744,
		0.7071065036539185, 0.7071064744399638, 0.7071064452260102, 0.7071064160120579, 0.7071063867981068,
		0.7071063575841569, 0.7071063283702081, 0.7071062991562607, 0.7071062699423144, 0.7071062407283694,
		0.7071062115144254, 0.7071061823004828, 0.7071061530865413, 0.7071061238726011, 0.707106094658662,
		0.7071060654447242, 0.7071060362307876, 0.7071060070168522, 0.707105977802918, 0.707105948588985,
		0.7071059193750532, 0.7071058901611226, 0.7071058609471932, 0.707105831733265, 0.7071058025193381,
		0.7071057733054122,
	},
	// t = 24
	{
		0.7071067884900398, 0.7071067738830559, 0.7071067592760721, 0.7071067446690887, 0.7071067300621056,
		0.7071067154551228, 0.7071067008481403, 0.7071066862411581, 0.7071066716341763, 0.7071066570271947,
		0.7071066424202134, 0.7071066278132324, 0.7071066132062517, 0.7071065985992713, 0.7071065839922912,
		0.7071065693853115, 0.707106554778332, 0.7071065401713528, 0.7071065255643739, 0.7071065109573953,
		0.7071064963504171, 0.7071064817434392, 0.7071064671364614, 0.7071064525294841, 0.707106437922507,
		0.7071064233155302, 0.7071064087085537, 0.7071063941015776, 0.7071063794946018, 0.7071063648876262,
		0.7071063502806509, 0.707106335673676, 0.7071063210667013, 0.7071063064597269, 0.707106291852753,
	},
}
